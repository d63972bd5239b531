package commands

import (
	"errors"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"
)

var ErrSetPartnerShiftCommandIsNotConstructed = errors.New(
	"SetPartnerShiftCommand must be created via NewSetPartnerShiftCommand constructor",
)

// SetPartnerShiftCommand represents a partner starting or ending a shift.
// Going online makes the partner discoverable by dispatch; going offline
// removes them from every candidate set.
type SetPartnerShiftCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	online    bool

	guard guard.ConstructorGuard
}

// NewSetPartnerShiftCommand creates a command to toggle a partner's shift.
func NewSetPartnerShiftCommand(partnerID kernel.UUID, online bool) (SetPartnerShiftCommand, error) {
	cmd := SetPartnerShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return SetPartnerShiftCommand{}, err
	}

	cmd.online = online
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetPartnerShiftCommandIsNotConstructed if validation fails.
func (c SetPartnerShiftCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerShiftCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner toggling their shift.
func (c SetPartnerShiftCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Online reports whether the partner is starting a shift.
func (c SetPartnerShiftCommand) Online() bool {
	return c.online
}

func (c *SetPartnerShiftCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}
