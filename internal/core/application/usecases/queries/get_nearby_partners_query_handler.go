package queries

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
)

// GetNearbyPartnersQueryHandler finds dispatchable partners around a point.
// The database narrows candidates to online, available partners with a known
// location; the precise great-circle distance filter runs in Go so the SQL
// stays free of trigonometry.
//
// Example:
//
//	handler := NewGetNearbyPartnersQueryHandler(db)
//	partners, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d partners within %.0f km\n", len(partners), query.RadiusKm())
type GetNearbyPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetNearbyPartnersQueryHandler creates a handler for nearby partner
// queries. Requires a GORM database connection for query execution.
func NewGetNearbyPartnersQueryHandler(db *gorm.DB) GetNearbyPartnersQueryHandler {
	return GetNearbyPartnersQueryHandler{db: db}
}

// Handle executes the nearby partner search.
// Returns partners within the query radius sorted by distance ascending.
func (h GetNearbyPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyPartnersQuery,
) ([]GetNearbyPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetNearbyPartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			current_lat,
			current_lng,
			vehicle_type,
			rating
		FROM partners
		WHERE is_available
		  AND is_online
		  AND current_lat IS NOT NULL
		  AND current_lng IS NOT NULL
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	center := query.Center()

	for rows.Next() {
		var partnerResp GetNearbyPartnersQueryResponse
		var id uuid.UUID
		var lat, lng decimal.Decimal

		err = rows.Scan(
			&id,
			&lat,
			&lng,
			&partnerResp.VehicleType,
			&partnerResp.Rating,
		)
		if err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		partnerResp.ID = partnerID

		location, locErr := kernel.NewGeoPoint(lat, lng)
		if locErr != nil {
			return nil, locErr
		}
		partnerResp.Location = location

		distanceKm, distErr := center.DistanceKm(location)
		if distErr != nil {
			return nil, distErr
		}
		if distanceKm > query.RadiusKm() {
			continue
		}
		partnerResp.DistanceKm = distanceKm

		partners = append(partners, partnerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(partners, func(i, j int) bool {
		return partners[i].DistanceKm < partners[j].DistanceKm
	})

	return partners, nil
}
