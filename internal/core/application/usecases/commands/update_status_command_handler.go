package commands

import (
	"context"
	"time"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
)

// UpdateStatusCommandHandler handles delivery lifecycle transitions.
// Besides moving the job itself, terminal transitions feed back into the
// assigned partner's history: a delivered job counts as a success, a
// cancelled or failed one as a cancellation, and either way the partner's
// rating is nudged and the partner becomes free for new work.
type UpdateStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateStatusCommandHandler creates a handler for status transitions.
// Requires a UoWFactory for coordinating updates across both aggregates.
func NewUpdateStatusCommandHandler(uowFactory UoWFactory) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Loads the job, applies the transition through the aggregate's state
// machine, and records the outcome on the partner when the job reaches a
// terminal status. Repeating the current status is a no-op that succeeds.
func (h UpdateStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateStatusCommand,
) (*delivery.DeliveryJob, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	job, err := deliveryRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if job.Status() == cmd.Target() {
		// Retried request, nothing to change.
		return job, nil
	}

	// The transition clears the partner reference on cancellation and
	// failure, so capture it first for the outcome bookkeeping.
	assignedPartnerID := job.Partner()

	if err = job.TransitionTo(cmd.Target(), now); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	if cmd.Target().IsTerminal() && assignedPartnerID != nil {
		if err = h.recordOutcome(ctx, uow, *assignedPartnerID, cmd.Target(), now); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return job, nil
}

func (h UpdateStatusCommandHandler) recordOutcome(
	ctx context.Context,
	uow UoW,
	partnerID kernel.UUID,
	target delivery.Status,
	now time.Time,
) error {
	partnerRepo := uow.PartnerRepository()

	assigned, err := partnerRepo.Get(ctx, partnerID)
	if err != nil {
		return err
	}

	assigned.RecordDeliveryOutcome(target == delivery.Delivered, now)

	return partnerRepo.Update(ctx, assigned)
}
