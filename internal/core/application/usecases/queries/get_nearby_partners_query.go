// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning lightweight read models shaped for their consumers.
package queries

import (
	"errors"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"
)

var ErrGetNearbyPartnersQueryIsNotConstructed = errors.New(
	"GetNearbyPartnersQuery must be created via NewGetNearbyPartnersQuery constructor",
)

// DefaultNearbyRadiusKm is the search radius used when the caller does not
// provide one.
const DefaultNearbyRadiusKm = 10.0

// GetNearbyPartnersQuery retrieves available partners around a point.
// Only partners that are online, available, and reporting a location are
// considered.
//
// Example:
//
//	center, _ := kernel.GeoPointFromFloats(27.7172, 85.3240)
//	query, err := NewGetNearbyPartnersQuery(center, 5)
//	if err != nil {
//	    return err
//	}
type GetNearbyPartnersQuery struct { //nolint:recvcheck //using for validation
	center   kernel.GeoPoint
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewGetNearbyPartnersQuery creates a query for partners around center.
// A non-positive radius falls back to DefaultNearbyRadiusKm.
func NewGetNearbyPartnersQuery(center kernel.GeoPoint, radiusKm float64) (GetNearbyPartnersQuery, error) {
	if err := center.Validate(); err != nil {
		return GetNearbyPartnersQuery{}, err
	}

	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}

	return GetNearbyPartnersQuery{
		center:   center,
		radiusKm: radiusKm,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNearbyPartnersQueryIsNotConstructed if validation fails.
func (q GetNearbyPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyPartnersQueryIsNotConstructed)
}

// Center returns the search origin.
func (q GetNearbyPartnersQuery) Center() kernel.GeoPoint {
	return q.center
}

// RadiusKm returns the effective search radius.
func (q GetNearbyPartnersQuery) RadiusKm() float64 {
	return q.radiusKm
}

// GetNearbyPartnersQueryResponse represents one partner found near the
// search point, ordered by distance from it.
type GetNearbyPartnersQueryResponse struct {
	ID          kernel.UUID
	Location    kernel.GeoPoint
	VehicleType string
	Rating      float64
	DistanceKm  float64
}
