package partner

import (
	"fmt"

	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
)

// VehicleType represents the category of vehicle a partner operates.
// The category feeds into dispatch scoring: lighter vehicles get a small
// preference for short urban routes.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// Motorcycle is the fastest option for short urban deliveries.
	Motorcycle

	// Bicycle suits short distances in dense areas.
	Bicycle

	// Car carries larger packages over longer routes.
	Car

	// Van is used for bulk transport.
	Van
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown: "unknown",
		Motorcycle:     "motorcycle",
		Bicycle:        "bicycle",
		Car:            "car",
		Van:            "van",
	}
}

// VehicleTypeFromString parses a vehicle type from its wire representation.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt, str := range getVehicleTypeStrings() {
		if vt != VehicleUnknown && str == s {
			return vt, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle_type", fmt.Errorf("%q is not a valid vehicle type", s))
}

// Validate checks if the VehicleType value is valid.
func (v VehicleType) Validate() error {
	if v == VehicleUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle_type", fmt.Errorf("%d is not a valid vehicle type", v))
	}
	if _, ok := getVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle_type", fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the wire-format name of the vehicle type, e.g. "motorcycle".
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "unknown"
}
