package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
)

// GetDeliveryStatisticsQueryHandler aggregates job counters in one pass over
// the deliveries table.
type GetDeliveryStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryStatisticsQueryHandler creates a handler for delivery
// statistics queries. Requires a GORM database connection.
func NewGetDeliveryStatisticsQueryHandler(db *gorm.DB) GetDeliveryStatisticsQueryHandler {
	return GetDeliveryStatisticsQueryHandler{db: db}
}

// Handle executes the statistics aggregation.
func (h GetDeliveryStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatisticsQuery,
) (GetDeliveryStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryStatisticsQueryResponse{}, err
	}

	var resp GetDeliveryStatisticsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status IN (?, ?, ?)),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(AVG(actual_distance_km) FILTER (WHERE actual_distance_km IS NOT NULL), 0)
		FROM deliveries
	`,
		delivery.Pending.String(),
		delivery.Assigned.String(),
		delivery.PickedUp.String(),
		delivery.InTransit.String(),
		delivery.Delivered.String(),
		delivery.Cancelled.String(),
		delivery.Failed.String(),
	).Row()

	err := row.Scan(
		&resp.Total,
		&resp.Pending,
		&resp.Active,
		&resp.Delivered,
		&resp.Cancelled,
		&resp.Failed,
		&resp.AvgDistanceKm,
	)
	if err != nil {
		return GetDeliveryStatisticsQueryResponse{}, err
	}

	finished := resp.Delivered + resp.Cancelled + resp.Failed
	if finished > 0 {
		resp.SuccessRate = float64(resp.Delivered) / float64(finished)
	}

	return resp, nil
}
