package queries

import (
	"errors"

	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"
)

var ErrGetDeliveryStatisticsQueryIsNotConstructed = errors.New(
	"GetDeliveryStatisticsQuery must be created via NewGetDeliveryStatisticsQuery constructor",
)

// GetDeliveryStatisticsQuery retrieves workload counters across all delivery
// jobs. This is a parameterless query used by operational dashboards.
type GetDeliveryStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryStatisticsQuery creates a query for delivery statistics.
func NewGetDeliveryStatisticsQuery() GetDeliveryStatisticsQuery {
	return GetDeliveryStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryStatisticsQueryIsNotConstructed if validation fails.
func (q GetDeliveryStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatisticsQueryIsNotConstructed)
}

// GetDeliveryStatisticsQueryResponse summarizes jobs by lifecycle bucket.
// Active covers assigned, picked up, and in-transit jobs. The success rate
// is delivered jobs over all finished ones, and the average distance covers
// jobs with a recorded actual distance.
type GetDeliveryStatisticsQueryResponse struct {
	Total         int
	Pending       int
	Active        int
	Delivered     int
	Cancelled     int
	Failed        int
	SuccessRate   float64
	AvgDistanceKm float64
}
