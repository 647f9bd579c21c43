package commands

import (
	"context"

	"gamestore/internal/core/domain/model/kernel"
)

// ChangePromotionStatusCommandHandler toggles a promotion. Repeating the
// current status is accepted and only refreshes the modification time.
//
// Example:
//
//	handler := NewChangePromotionStatusCommandHandler(uowFactory, kernel.SystemClock{})
//	cmd, _ := NewChangePromotionStatusCommand(promotionID, false)
//	err := handler.Handle(ctx, cmd) // inactive promotions no longer affect prices
type ChangePromotionStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewChangePromotionStatusCommandHandler(uowFactory UoWFactory, clock kernel.Clock) ChangePromotionStatusCommandHandler {
	return ChangePromotionStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ChangePromotionStatusCommandHandler) Handle(ctx context.Context, cmd ChangePromotionStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	defer uow.Rollback(ctx)

	promotionRepo := uow.PromotionRepository()

	aggregate, err := promotionRepo.Get(ctx, cmd.PromotionID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		aggregate.Activate(h.clock.Now())
	} else {
		aggregate.Deactivate(h.clock.Now())
	}

	if err = promotionRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return commit(ctx, uow, "change promotion status")
}
