package queries

import (
	"errors"
	"time"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"
)

var ErrGetUnsyncedDeliveriesQueryIsNotConstructed = errors.New(
	"GetUnsyncedDeliveriesQuery must be created via NewGetUnsyncedDeliveriesQuery constructor",
)

// GetUnsyncedDeliveriesQuery retrieves jobs that have not been reconciled
// with a client yet. Used by support tooling to audit offline traffic.
type GetUnsyncedDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnsyncedDeliveriesQuery creates a query for unreconciled jobs.
func NewGetUnsyncedDeliveriesQuery() GetUnsyncedDeliveriesQuery {
	return GetUnsyncedDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnsyncedDeliveriesQueryIsNotConstructed if validation fails.
func (q GetUnsyncedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetUnsyncedDeliveriesQueryIsNotConstructed)
}

// GetUnsyncedDeliveriesQueryResponse represents one job awaiting
// reconciliation, oldest first.
type GetUnsyncedDeliveriesQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	LocalID        string
	Status         string
	PickupAddress  string
	DropoffAddress string
	CreatedAt      time.Time
}
