package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"
)

var ErrGetPartnerStatisticsQueryIsNotConstructed = errors.New(
	"GetPartnerStatisticsQuery must be created via NewGetPartnerStatisticsQuery constructor",
)

// GetPartnerStatisticsQuery retrieves one partner's delivery track record
// and estimated earnings.
type GetPartnerStatisticsQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerStatisticsQuery creates a query for a partner's statistics.
func NewGetPartnerStatisticsQuery(partnerID kernel.UUID) (GetPartnerStatisticsQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerStatisticsQuery{}, err
	}

	return GetPartnerStatisticsQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPartnerStatisticsQueryIsNotConstructed if validation fails.
func (q GetPartnerStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerStatisticsQueryIsNotConstructed)
}

// PartnerID returns the identifier of the partner to report on.
func (q GetPartnerStatisticsQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

// GetPartnerStatisticsQueryResponse summarizes a partner's history.
// Earnings are estimated from completed deliveries at the partner's hourly
// rate after the platform's share.
type GetPartnerStatisticsQueryResponse struct {
	PartnerID            kernel.UUID
	TotalDeliveries      int
	SuccessfulDeliveries int
	CancelledDeliveries  int
	SuccessRate          float64
	Rating               float64
	IsOnline             bool
	IsAvailable          bool
	EstimatedEarnings    decimal.Decimal
}
