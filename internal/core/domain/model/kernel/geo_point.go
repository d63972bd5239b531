package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// CoordinatePrecision is the number of fractional digits kept for latitude
// and longitude values. Coordinates are stored fixed-point so persistence
// round-trips lose no precision.
const CoordinatePrecision = 8

// earthRadiusKm is the mean radius of the Earth used by the haversine formula.
const earthRadiusKm = 6371.0

// Coordinate bounds in decimal degrees.
var (
	latMin = decimal.NewFromInt(-90)
	latMax = decimal.NewFromInt(90)
	lngMin = decimal.NewFromInt(-180)
	lngMax = decimal.NewFromInt(180)
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created using NewGeoPoint or
// GeoPointFromFloats to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or GeoPointFromFloats constructors")

// ErrIncompleteCoordinatePair is returned when a latitude arrives without a
// longitude or vice versa. Coordinates only exist as whole pairs.
var ErrIncompleteCoordinatePair = errs.NewValueIsInvalidError(
	"coordinates must be provided as a complete lat/lng pair")

// GeoPoint represents a geographic position in decimal degrees with validated
// latitude and longitude. GeoPoint is an immutable value object; coordinates
// are fixed-point decimals rounded to CoordinatePrecision fractional digits.
// The zero value of GeoPoint is invalid and will fail validation.
//
// Example:
//
//	point, err := kernel.GeoPointFromFloats(27.7172, 85.3240)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Pickup: %s", point) // Output: GeoPoint(27.7172,85.324)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   decimal.Decimal
	lng   decimal.Decimal
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from fixed-point decimal coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// both are rounded to CoordinatePrecision fractional digits.
func NewGeoPoint(lat decimal.Decimal, lng decimal.Decimal) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// GeoPointFromFloats creates a GeoPoint from float64 coordinates.
// The floats are converted to fixed-point decimals before validation, so the
// same range and precision rules as NewGeoPoint apply.
func GeoPointFromFloats(lat float64, lng float64) (GeoPoint, error) {
	return NewGeoPoint(decimal.NewFromFloat(lat), decimal.NewFromFloat(lng))
}

// Validate checks if the GeoPoint was properly constructed using a constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() decimal.Decimal {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() decimal.Decimal {
	return p.lng
}

// String returns a human-readable representation in the form "GeoPoint(lat,lng)".
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%s,%s)", p.lat, p.lng)
}

// IsEqual compares two geo points for equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat.Equal(other.lat) && p.lng.Equal(other.lng), nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometres using the haversine formula. The result is always non-negative,
// zero for identical points, and symmetric in its arguments.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return haversineKm(
		p.lat.InexactFloat64(), p.lng.InexactFloat64(),
		other.lat.InexactFloat64(), other.lng.InexactFloat64(),
	), nil
}

// haversineKm computes the great-circle distance between two coordinates in
// decimal degrees on a sphere of radius earthRadiusKm.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180

	lat1 *= degToRad
	lng1 *= degToRad
	lat2 *= degToRad
	lng2 *= degToRad

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	// Floating-point rounding can push the intermediate slightly outside
	// [0, 1] for antipodal points, which would take Asin out of its domain.
	s := math.Sqrt(a)
	if s > 1 {
		s = 1
	}

	return 2 * math.Asin(s) * earthRadiusKm
}

// setLat validates and sets the latitude.
// Note: pointer receiver is used for private setters to enable
// self-encapsulated validation during construction.
func (p *GeoPoint) setLat(lat decimal.Decimal) error {
	if lat.LessThan(latMin) || lat.GreaterThan(latMax) {
		return errs.NewValueIsOutOfRangeError("lat", lat, latMin, latMax)
	}

	p.lat = lat.Round(CoordinatePrecision)
	return nil
}

// setLng validates and sets the longitude.
// Note: pointer receiver is used for private setters to enable
// self-encapsulated validation during construction.
func (p *GeoPoint) setLng(lng decimal.Decimal) error {
	if lng.LessThan(lngMin) || lng.GreaterThan(lngMax) {
		return errs.NewValueIsOutOfRangeError("lng", lng, lngMin, lngMax)
	}

	p.lng = lng.Round(CoordinatePrecision)
	return nil
}
