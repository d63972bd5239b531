package commands

import (
	"errors"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand triggers partner assignment for a pending delivery
// job. Without a partner ID the best candidate is chosen automatically;
// with one, that specific partner is assigned. Either way the job must still
// be pending.
//
// Example:
//
//	cmd, _ := NewAssignPartnerCommand(jobID)       // automatic matching
//	cmd.SetPartnerID(partnerID)                    // or force a partner
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	partnerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a command to assign a partner to a job.
// Validates that the job ID is valid.
func NewAssignPartnerCommand(jobID kernel.UUID) (AssignPartnerCommand, error) {
	cmd := AssignPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return AssignPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPartnerCommandIsNotConstructed if validation fails.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// SetPartnerID requests assignment of a specific partner instead of
// automatic matching.
func (c *AssignPartnerCommand) SetPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = &partnerID
	return nil
}

// JobID returns the identifier of the job to assign.
func (c AssignPartnerCommand) JobID() kernel.UUID {
	return c.jobID
}

// PartnerID returns the requested partner, or nil for automatic matching.
func (c AssignPartnerCommand) PartnerID() *kernel.UUID {
	return c.partnerID
}

func (c *AssignPartnerCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
