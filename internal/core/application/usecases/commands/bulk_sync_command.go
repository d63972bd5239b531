package commands

import (
	"errors"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"
)

var ErrBulkSyncCommandIsNotConstructed = errors.New(
	"BulkSyncCommand must be created via NewBulkSyncCommand constructor",
)

// BulkSyncCommand represents a batch of offline-captured deliveries from one
// customer. Items are reconciled independently: payload validation happens
// per item during handling, not here, so the batch is accepted as long as it
// is non-empty.
//
// Example:
//
//	cmd, err := NewBulkSyncCommand(customerID, payloads)
//	if err != nil {
//	    return err
//	}
//	result, _ := handler.Handle(ctx, cmd)
//	log.Printf("synced %d, failed %d", len(result.Synced), len(result.Failed))
type BulkSyncCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	payloads   []SyncPayload

	guard guard.ConstructorGuard
}

// NewBulkSyncCommand creates a command to reconcile a batch of offline
// payloads. Validates the customer ID and that the batch is non-empty.
func NewBulkSyncCommand(customerID kernel.UUID, payloads []SyncPayload) (BulkSyncCommand, error) {
	cmd := BulkSyncCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPayloads(payloads),
	); err != nil {
		return BulkSyncCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBulkSyncCommandIsNotConstructed if validation fails.
func (c BulkSyncCommand) Validate() error {
	return c.guard.Validate(ErrBulkSyncCommandIsNotConstructed)
}

// CustomerID returns the identifier of the syncing customer.
func (c BulkSyncCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Payloads returns the offline payloads in client order.
func (c BulkSyncCommand) Payloads() []SyncPayload {
	return c.payloads
}

func (c *BulkSyncCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *BulkSyncCommand) setPayloads(payloads []SyncPayload) error {
	if len(payloads) == 0 {
		return errs.NewValueIsRequiredError("deliveries")
	}

	c.payloads = payloads
	return nil
}
