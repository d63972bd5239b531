package commands

import (
	"context"
	"time"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/delivery"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/core/domain/services"
)

// SyncDeliveryCommandHandler reconciles one offline-captured delivery with
// the server. Replays are detected by the customer's local ID: a payload
// already reconciled returns the existing job untouched, so clients can
// retry sync batches safely.
type SyncDeliveryCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
}

// NewSyncDeliveryCommandHandler creates a handler for offline sync
// operations. Requires a UoWFactory for transactional persistence.
func NewSyncDeliveryCommandHandler(uowFactory UoWFactory) SyncDeliveryCommandHandler {
	return SyncDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
	}
}

// Handle processes one offline payload.
// When the customer already synced this local ID, the stored job is returned
// as-is. Otherwise a new job is created in "pending" status, marked synced,
// a sync record is written, and an immediate dispatch pass tries to assign a
// partner. Everything happens in one transaction.
func (h SyncDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd SyncDeliveryCommand,
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

	existing, err := deliveryRepo.GetByLocalID(ctx, cmd.CustomerID(), cmd.LocalID())
	if err == nil {
		return existing, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	job, err := h.buildJob(cmd, now)
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, job); err != nil {
		return nil, err
	}

	record, err := delivery.NewSyncRecord(kernel.NewUUID(), job.ID(), now)
	if err != nil {
		return nil, err
	}
	record.MarkSuccess(now)

	if err = deliveryRepo.AddSyncRecord(ctx, record); err != nil {
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

// buildJob materializes the offline payload as a delivery job. The job's
// created-at keeps the client capture time when one was reported.
func (h SyncDeliveryCommandHandler) buildJob(
	cmd SyncDeliveryCommand,
	now time.Time,
) (*delivery.DeliveryJob, error) {
	createdAt := now
	if reported := cmd.ClientCreatedAt(); reported != nil && reported.Before(now) {
		createdAt = reported.UTC()
	}

	job, err := delivery.NewDeliveryJob(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.PickupAddress(),
		cmd.DropoffAddress(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err = job.SetRoute(cmd.Pickup(), cmd.Dropoff()); err != nil {
		return nil, err
	}
	job.SetDeliveryNotes(cmd.DeliveryNotes())
	job.SetLocalID(cmd.LocalID())
	job.SetSynced(true)

	if err = applyRouteEstimates(job); err != nil {
		return nil, err
	}

	return job, nil
}
