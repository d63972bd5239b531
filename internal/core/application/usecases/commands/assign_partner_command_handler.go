package commands

import (
	"context"
	"errors"
	"time"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/partner"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/services"
)

var (
	// ErrNoPendingJobFound is returned when the job to assign does not exist.
	ErrNoPendingJobFound = errors.New("no pending job found")

	// ErrPartnerNotAvailable is returned on manual assignment when the
	// requested partner is offline, unavailable, or already carries an
	// active job.
	ErrPartnerNotAvailable = errors.New("partner is not available")
)

// AssignPartnerCommandHandler orchestrates partner assignment for a single
// delivery job. Automatic matching scores the eligible candidates; manual
// assignment skips scoring but is held to the same availability and
// single-active-job rules. Both paths lock the partner row before the final
// check so concurrent assignments cannot double-book a partner.
//
// Example:
//
//	handler := NewAssignPartnerCommandHandler(uowFactory)
//	assigned, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if assigned == nil {
//	    log.Println("no partner has capacity, job stays pending")
//	}
type AssignPartnerCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
}

// NewAssignPartnerCommandHandler creates a handler for partner assignment
// operations. Requires a UoWFactory for coordinating transactional updates
// across repositories.
func NewAssignPartnerCommandHandler(uowFactory UoWFactory) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
	}
}

// Handle processes the assignment command.
// Returns the assigned partner, or nil when automatic matching found no
// partner with capacity; the job is left pending in that case. Manual
// assignment of an unavailable partner returns ErrPartnerNotAvailable
// instead of falling back to matching.
func (h AssignPartnerCommandHandler) Handle(
	ctx context.Context,
	cmd AssignPartnerCommand,
) (*partner.Partner, error) {
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

	job, err := uow.DeliveryRepository().Get(ctx, cmd.JobID())
	if isNotFound(err) {
		return nil, ErrNoPendingJobFound
	}
	if err != nil {
		return nil, err
	}

	if err = job.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	var assigned *partner.Partner
	if requested := cmd.PartnerID(); requested != nil {
		assigned, err = h.assignRequested(ctx, uow, job, *requested, now)
	} else {
		assigned, err = assignPendingJob(ctx, uow, h.dispatcher, job, now)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assigned, nil
}

// assignRequested handles the manual path: the named partner is locked,
// checked for availability and workload, and assigned.
func (h AssignPartnerCommandHandler) assignRequested(
	ctx context.Context,
	uow UoW,
	job *delivery.DeliveryJob,
	partnerID kernel.UUID,
	now time.Time,
) (*partner.Partner, error) {
	locked, err := uow.PartnerRepository().GetForUpdate(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	if !locked.IsAvailable() {
		return nil, ErrPartnerNotAvailable
	}

	active, err := uow.DeliveryRepository().CountActiveByPartner(ctx, locked.ID())
	if err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, ErrPartnerNotAvailable
	}

	if err = job.Assign(locked.ID(), now); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Update(ctx, job); err != nil {
		return nil, err
	}

	return locked, nil
}
