package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"fulfillment/cmd"
	httpserver "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/assignmentrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/partnerrepo"
	"fulfillment/internal/adapters/out/postgres/paymentrepo"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	root, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(root.CreateDispatchOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:          goDotEnvVariable("JWT_SECRET"),
		StripeSecretKey:    goDotEnvVariable("STRIPE_SECRET_KEY"),
		StripeCurrency:     goDotEnvVariable("STRIPE_CURRENCY"),
		SearchRadiusMeters: goDotEnvFloat("SEARCH_RADIUS_METERS"),
		PickupLatitude:     goDotEnvFloat("PICKUP_LATITUDE"),
		PickupLongitude:    goDotEnvFloat("PICKUP_LONGITUDE"),
		PickupAddress:      goDotEnvVariable("PICKUP_ADDRESS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvFloat(key string) float64 {
	value, err := strconv.ParseFloat(goDotEnvVariable(key), 64)
	if err != nil {
		log.Fatalf("Invalid float value for %s", key)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&paymentrepo.PaymentDTO{},
		&partnerrepo.PartnerDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateCreatePaymentIntentCommandHandler(),
		root.CreateConfirmPaymentCommandHandler(),
		root.CreateRefundPaymentCommandHandler(),
		root.CreateRegisterPartnerCommandHandler(),
		root.CreateVerifyPartnerCommandHandler(),
		root.CreateUpdatePartnerLocationCommandHandler(),
		root.CreateSetPartnerAvailabilityCommandHandler(),
		root.CreateCreateAssignmentCommandHandler(),
		root.CreateAdvanceDeliveryCommandHandler(),
		root.CreateRateDeliveryCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetNearbyPartnersQueryHandler(),
		root.CreateGetPartnerAssignmentsQueryHandler(),
	)
	server.RegisterRoutes(e, configs.JWTSecret)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
