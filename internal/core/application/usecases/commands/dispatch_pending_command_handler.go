package commands

import (
	"context"
	"time"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/services"
)

// DispatchPendingCommandHandler re-runs automatic assignment for every job
// still pending. Jobs created while no partner had capacity get picked up
// here once a partner frees up or comes online.
type DispatchPendingCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
}

// NewDispatchPendingCommandHandler creates a handler for dispatch sweeps.
// Requires a UoWFactory for coordinating transactional updates.
func NewDispatchPendingCommandHandler(uowFactory UoWFactory) DispatchPendingCommandHandler {
	return DispatchPendingCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
	}
}

// Handle processes the sweep.
// Pending job IDs are collected first, then each job is assigned in its own
// transaction so one contended assignment cannot hold locks across the whole
// sweep. Returns the number of jobs assigned. Jobs without capacity simply
// stay pending; that is not an error.
func (h DispatchPendingCommandHandler) Handle(ctx context.Context, cmd DispatchPendingCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	pendingIDs, err := h.collectPendingIDs(ctx)
	if err != nil {
		return 0, err
	}

	assigned := 0
	for _, jobID := range pendingIDs {
		ok, assignErr := h.assignOne(ctx, jobID)
		if assignErr != nil {
			return assigned, assignErr
		}
		if ok {
			assigned++
		}
	}

	return assigned, nil
}

func (h DispatchPendingCommandHandler) collectPendingIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.DeliveryRepository().GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(pending))
	for _, job := range pending {
		ids = append(ids, job.ID())
	}

	return ids, nil
}

func (h DispatchPendingCommandHandler) assignOne(ctx context.Context, jobID kernel.UUID) (bool, error) {
	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	job, err := uow.DeliveryRepository().Get(ctx, jobID)
	if err != nil {
		// The job may have been cancelled since the sweep started.
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if err = job.Status().ValidateAssign(); err != nil {
		return false, nil
	}

	assigned, err := assignPendingJob(ctx, uow, h.dispatcher, job, now)
	if err != nil {
		return false, err
	}
	if assigned == nil {
		return false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
