package commands

import (
	"context"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
)

// BulkSyncResult reports the outcome of a batch reconciliation. Synced holds
// the stored jobs in payload order, replays included. Failed holds one entry
// per rejected payload with the reasons.
type BulkSyncResult struct {
	Synced []*delivery.DeliveryJob
	Failed []BulkSyncFailure
}

// BulkSyncFailure describes one payload that could not be reconciled.
type BulkSyncFailure struct {
	LocalID string
	Errors  []string
}

// BulkSyncCommandHandler reconciles a batch of offline payloads. Each item
// runs in its own transaction through the single-item sync handler, so one
// bad payload never rolls back its siblings.
//
// Example:
//
//	handler := NewBulkSyncCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	for _, f := range result.Failed {
//	    log.Printf("payload %s rejected: %v", f.LocalID, f.Errors)
//	}
type BulkSyncCommandHandler struct {
	syncHandler SyncDeliveryCommandHandler
}

// NewBulkSyncCommandHandler creates a handler for batch sync operations.
func NewBulkSyncCommandHandler(uowFactory UoWFactory) BulkSyncCommandHandler {
	return BulkSyncCommandHandler{
		syncHandler: NewSyncDeliveryCommandHandler(uowFactory),
	}
}

// Handle processes the batch.
// Payloads are attempted in order; a validation or persistence failure is
// recorded against that payload's local ID and processing continues. The
// returned error covers only batch-level problems.
func (h BulkSyncCommandHandler) Handle(ctx context.Context, cmd BulkSyncCommand) (BulkSyncResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkSyncResult{}, err
	}

	result := BulkSyncResult{}

	for _, payload := range cmd.Payloads() {
		itemCmd, err := NewSyncDeliveryCommand(cmd.CustomerID(), payload)
		if err != nil {
			result.Failed = append(result.Failed, newBulkSyncFailure(payload.LocalID, err))
			continue
		}

		job, err := h.syncHandler.Handle(ctx, itemCmd)
		if err != nil {
			result.Failed = append(result.Failed, newBulkSyncFailure(payload.LocalID, err))
			continue
		}

		result.Synced = append(result.Synced, job)
	}

	return result, nil
}

// newBulkSyncFailure splits a joined validation error into individual
// messages so clients can show per-field problems.
func newBulkSyncFailure(localID string, err error) BulkSyncFailure {
	type unwrapper interface {
		Unwrap() []error
	}

	failure := BulkSyncFailure{LocalID: localID}

	if joined, ok := err.(unwrapper); ok {
		for _, e := range joined.Unwrap() {
			failure.Errors = append(failure.Errors, e.Error())
		}
		return failure
	}

	failure.Errors = append(failure.Errors, err.Error())
	return failure
}
