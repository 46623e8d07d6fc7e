package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	JWTSecret          string
	StripeSecretKey    string
	StripeCurrency     string
	SearchRadiusMeters float64
	PickupLatitude     float64
	PickupLongitude    float64
	PickupAddress      string
}
