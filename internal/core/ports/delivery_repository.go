// Package ports defines repository interfaces for the delivery domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery job
// aggregates and their sync audit records.
type DeliveryRepository interface {
	// Add persists a new delivery job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, job *delivery.DeliveryJob) error

	// Update persists changes to an existing delivery job aggregate.
	// The job must exist in the repository and be valid.
	Update(ctx context.Context, job *delivery.DeliveryJob) error

	// Get retrieves a delivery job by its unique identifier.
	// Returns an ObjectNotFoundError when no such job exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryJob, error)

	// GetByLocalID retrieves the job a customer previously synced under the
	// given client-supplied local ID. Used to make offline sync idempotent:
	// re-submitting the same local ID must find the original job instead of
	// creating a duplicate. Returns an ObjectNotFoundError when no job with
	// that (customer, local ID) pair exists.
	GetByLocalID(ctx context.Context, customerID kernel.UUID, localID string) (*delivery.DeliveryJob, error)

	// GetAllPending retrieves all jobs still waiting for partner assignment,
	// oldest first.
	GetAllPending(ctx context.Context) ([]*delivery.DeliveryJob, error)

	// CountActiveByPartner counts the non-terminal jobs currently referencing
	// the partner (status assigned, picked_up, or in_transit). Assignment
	// re-validates through this count at commit time: a partner with an
	// active job must never receive a second one.
	CountActiveByPartner(ctx context.Context, partnerID kernel.UUID) (int64, error)

	// AddSyncRecord appends a sync audit record for a delivery job.
	AddSyncRecord(ctx context.Context, record *delivery.SyncRecord) error
}
