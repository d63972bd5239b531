package commands

import (
	"context"
	"time"
)

// SetPartnerShiftCommandHandler toggles a partner's shift state.
type SetPartnerShiftCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewSetPartnerShiftCommandHandler creates a handler for shift toggles.
func NewSetPartnerShiftCommandHandler(uowFactory PartnerUoWFactory) SetPartnerShiftCommandHandler {
	return SetPartnerShiftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shift toggle.
// Going online also marks the partner available and refreshes last-active,
// so a returning partner immediately qualifies for the dispatch recency
// bonus.
func (h SetPartnerShiftCommandHandler) Handle(ctx context.Context, cmd SetPartnerShiftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	shifting, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if cmd.Online() {
		shifting.GoOnline(now)
	} else {
		shifting.GoOffline(now)
	}

	if err = partnerRepo.Update(ctx, shifting); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
