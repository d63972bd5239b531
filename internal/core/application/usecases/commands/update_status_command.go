package commands

import (
	"errors"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand represents a request to move a delivery job to a new
// lifecycle status. The transition itself is validated by the aggregate, so
// the command only checks that the target status exists.
//
// Example:
//
//	target, _ := delivery.StatusFromString("picked_up")
//	cmd, err := NewUpdateStatusCommand(jobID, target)
//	if err != nil {
//	    return err
//	}
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	target delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates a command to change a job's status.
// Validates that the job ID is valid and the target status is a known one.
func NewUpdateStatusCommand(jobID kernel.UUID, target delivery.Status) (UpdateStatusCommand, error) {
	cmd := UpdateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateStatusCommandIsNotConstructed if validation fails.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// JobID returns the identifier of the job to update.
func (c UpdateStatusCommand) JobID() kernel.UUID {
	return c.jobID
}

// Target returns the requested status.
func (c UpdateStatusCommand) Target() delivery.Status {
	return c.target
}

func (c *UpdateStatusCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *UpdateStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
