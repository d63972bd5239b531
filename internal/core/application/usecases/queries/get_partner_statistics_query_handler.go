package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
)

// partnerShare is the fraction of the hourly rate a partner keeps per
// completed delivery when estimating earnings.
var partnerShare = decimal.NewFromFloat(0.75)

// GetPartnerStatisticsQueryHandler reads one partner's track record straight
// from the partners table.
type GetPartnerStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerStatisticsQueryHandler creates a handler for partner
// statistics queries. Requires a GORM database connection.
func NewGetPartnerStatisticsQueryHandler(db *gorm.DB) GetPartnerStatisticsQueryHandler {
	return GetPartnerStatisticsQueryHandler{db: db}
}

// Handle executes the statistics query.
// Returns errs.ErrObjectNotFound when the partner does not exist.
func (h GetPartnerStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerStatisticsQuery,
) (GetPartnerStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPartnerStatisticsQueryResponse{}, err
	}

	var resp GetPartnerStatisticsQueryResponse
	var hourlyRate decimal.Decimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			total_deliveries,
			successful_deliveries,
			cancelled_deliveries,
			rating,
			is_online,
			is_available,
			hourly_rate
		FROM partners
		WHERE id = ?
	`, query.PartnerID().Bytes()).Row()

	err := row.Scan(
		&resp.TotalDeliveries,
		&resp.SuccessfulDeliveries,
		&resp.CancelledDeliveries,
		&resp.Rating,
		&resp.IsOnline,
		&resp.IsAvailable,
		&hourlyRate,
	)
	if err != nil {
		return GetPartnerStatisticsQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"partner_id", query.PartnerID(), err,
		)
	}

	resp.PartnerID = query.PartnerID()
	if resp.TotalDeliveries > 0 {
		resp.SuccessRate = float64(resp.SuccessfulDeliveries) / float64(resp.TotalDeliveries)
	}
	resp.EstimatedEarnings = hourlyRate.
		Mul(decimal.NewFromInt(int64(resp.SuccessfulDeliveries))).
		Mul(partnerShare).
		Round(2)

	return resp, nil
}
