package commands

import (
	"context"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/services"
	"gamestore/internal/pkg/errs"
)

// AlterPromotionCommandHandler edits a promotion. The new price must stay
// below the game's current base price; the period is not checked for
// overlap.
//
// Example:
//
//	handler := NewAlterPromotionCommandHandler(uowFactory, kernel.SystemClock{})
//	cmd, _ := NewAlterPromotionCommand(promotionID, decimal.RequireFromString("29.90"), startsAt, endsAt)
//
//	if err := handler.Handle(ctx, cmd); errors.Is(err, services.ErrPriceNotBelowBase) {
//	    // the promotional price must be below the base price
//	}
type AlterPromotionCommandHandler struct {
	uowFactory UoWFactory
	pricing    services.PromotionPricing
	clock      kernel.Clock
}

func NewAlterPromotionCommandHandler(uowFactory UoWFactory, clock kernel.Clock) AlterPromotionCommandHandler {
	return AlterPromotionCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPromotionPricing(),
		clock:      clock,
	}
}

func (h AlterPromotionCommandHandler) Handle(ctx context.Context, cmd AlterPromotionCommand) error {
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

	item, err := loadItem(ctx, uow.GameRepository(), aggregate.GameID())
	if err != nil {
		return err
	}

	if err = h.pricing.ValidateEditedPromotion(item, aggregate, cmd.Price()); err != nil {
		return pricingError(err, aggregate.GameID())
	}

	if err = aggregate.Alter(cmd.Price(), cmd.StartsAt(), cmd.EndsAt(), h.clock.Now()); err != nil {
		return errs.Validation(err)
	}

	if err = promotionRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return commit(ctx, uow, "alter promotion")
}
