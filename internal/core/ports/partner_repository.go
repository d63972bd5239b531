package ports

import (
	"context"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	Add(ctx context.Context, p *partner.Partner) error

	// Update persists changes to an existing partner aggregate.
	Update(ctx context.Context, p *partner.Partner) error

	// Get retrieves a partner by its unique identifier.
	// Returns an ObjectNotFoundError when no such partner exists.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetForUpdate retrieves a partner by identifier while taking a row-level
	// lock that is held until the surrounding transaction completes. Used by
	// assignment to serialize concurrent attempts on the same partner.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetAllEligible retrieves all partners eligible for new assignment:
	// available, online, and holding no job in an active status. Busy-ness is
	// computed from live job status rather than a stored flag so the result
	// can never be stale. The result order is the candidate discovery order
	// used as the dispatch tie-break.
	GetAllEligible(ctx context.Context) ([]*partner.Partner, error)
}
