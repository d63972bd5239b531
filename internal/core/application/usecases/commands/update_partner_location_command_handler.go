package commands

import (
	"context"
	"time"
)

// UpdatePartnerLocationCommandHandler persists partner position reports.
type UpdatePartnerLocationCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerLocationCommandHandler creates a handler for partner
// position reports.
func NewUpdatePartnerLocationCommandHandler(
	uowFactory PartnerUoWFactory,
) UpdatePartnerLocationCommandHandler {
	return UpdatePartnerLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report.
// Loads the partner, updates its location and last-active time, and persists
// the change in a transaction.
func (h UpdatePartnerLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePartnerLocationCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	reporting, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = reporting.UpdateLocation(cmd.Location(), time.Now().UTC()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, reporting); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
