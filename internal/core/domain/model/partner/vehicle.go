package partner

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Vehicle represents the kind of vehicle a delivery partner operates.
type Vehicle int

const (
	// VehicleUnknown represents an invalid or undefined vehicle.
	// This value (0) helps catch uninitialized Vehicle values.
	VehicleUnknown Vehicle = iota

	// Bicycle is a pedal bicycle.
	Bicycle

	// Motorcycle is a motorcycle.
	Motorcycle

	// Car is a car.
	Car

	// Scooter is a motorized scooter.
	Scooter
)

// getVehicleStrings returns a map of Vehicle values to their string representations.
func getVehicleStrings() map[Vehicle]string {
	return map[Vehicle]string{
		VehicleUnknown: "Unknown",
		Bicycle:        "Bicycle",
		Motorcycle:     "Motorcycle",
		Car:            "Car",
		Scooter:        "Scooter",
	}
}

// getValidVehicleStrings returns a map of only valid Vehicle values.
func getValidVehicleStrings() map[Vehicle]string {
	//nolint:exhaustive // VehicleUnknown is intentionally excluded as it's invalid
	return map[Vehicle]string{
		Bicycle:    "Bicycle",
		Motorcycle: "Motorcycle",
		Car:        "Car",
		Scooter:    "Scooter",
	}
}

// VehicleFromString parses a vehicle from its string representation.
// Used when rehydrating partners from storage and when accepting API input.
func VehicleFromString(s string) (Vehicle, error) {
	for vehicle, str := range getValidVehicleStrings() {
		if str == s {
			return vehicle, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle is invalid",
		fmt.Errorf("%q is not a known vehicle", s))
}

// Validate checks if the Vehicle value is valid.
// VehicleUnknown (0) and any out-of-range value are invalid.
func (v Vehicle) Validate() error {
	if _, ok := getValidVehicleStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle is invalid",
			fmt.Errorf("%d is not a valid vehicle", v))
	}
	return nil
}

// String returns the human-readable name of the vehicle.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (v Vehicle) String() string {
	if str, ok := getVehicleStrings()[v]; ok {
		return str
	}
	return "Unknown"
}
