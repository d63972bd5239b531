package commands

import (
	"errors"

	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"
)

var ErrDispatchPendingCommandIsNotConstructed = errors.New(
	"DispatchPendingCommand must be created via NewDispatchPendingCommand constructor",
)

// DispatchPendingCommand triggers an assignment sweep over all pending
// delivery jobs. This is a parameterless command issued by the background
// dispatch loop.
//
// Example:
//
//	cmd := NewDispatchPendingCommand()
//	handler := NewDispatchPendingCommandHandler(uowFactory)
//	assigned, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("dispatch sweep failed: %v", err)
//	}
type DispatchPendingCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingCommand creates a new command to sweep pending jobs.
func NewDispatchPendingCommand() DispatchPendingCommand {
	return DispatchPendingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchPendingCommandIsNotConstructed if validation fails.
func (c *DispatchPendingCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingCommandIsNotConstructed)
}
