package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
)

// GetUnsyncedDeliveriesQueryHandler lists jobs still flagged as unsynced.
type GetUnsyncedDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetUnsyncedDeliveriesQueryHandler creates a handler for unsynced job
// queries. Requires a GORM database connection.
func NewGetUnsyncedDeliveriesQueryHandler(db *gorm.DB) GetUnsyncedDeliveriesQueryHandler {
	return GetUnsyncedDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
// Returns unsynced jobs ordered oldest first so support works through the
// backlog in capture order.
func (h GetUnsyncedDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetUnsyncedDeliveriesQuery,
) ([]GetUnsyncedDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetUnsyncedDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			local_id,
			status,
			pickup_address,
			dropoff_address,
			created_at
		FROM deliveries
		WHERE NOT is_synced
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobResp GetUnsyncedDeliveriesQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&jobResp.LocalID,
			&jobResp.Status,
			&jobResp.PickupAddress,
			&jobResp.DropoffAddress,
			&jobResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		jobResp.ID = jobID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		jobResp.CustomerID = ownerID

		jobs = append(jobs, jobResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
