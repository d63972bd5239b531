package commands

import (
	"context"
	"time"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/services"
)

// CreateDeliveryCommandHandler handles the business logic for delivery job
// creation. New jobs start in "pending" status; when pickup and dropoff
// coordinates are provided, route estimates are derived and an immediate
// dispatch pass tries to assign a partner in the same transaction.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, dispatcher)
//	job, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("delivery creation failed: %w", err)
//	}
//	// job is persisted; it is either assigned or still pending
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation
// operations. Requires a UoWFactory for transactional persistence.
func NewCreateDeliveryCommandHandler(uowFactory UoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
	}
}

// Handle processes the delivery creation command.
// Persists the new job and attempts partner assignment when the job carries
// pickup coordinates. A failed dispatch pass is not an error: the job stays
// pending for the background dispatch loop to pick up.
func (h CreateDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryCommand,
) (*delivery.DeliveryJob, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	job, err := delivery.NewDeliveryJob(
		cmd.JobID(),
		cmd.CustomerID(),
		cmd.PickupAddress(),
		cmd.DropoffAddress(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = job.SetRoute(cmd.Pickup(), cmd.Dropoff()); err != nil {
		return nil, err
	}
	job.SetDeliveryNotes(cmd.DeliveryNotes())

	if err = applyRouteEstimates(job); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, job); err != nil {
		return nil, err
	}

	if _, err = assignPendingJob(ctx, uow, h.dispatcher, job, now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return job, nil
}
