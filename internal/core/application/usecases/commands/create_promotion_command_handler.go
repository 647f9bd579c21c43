package commands

import (
	"context"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/promotion"
	"gamestore/internal/core/domain/services"
	"gamestore/internal/pkg/errs"
)

// CreatePromotionCommandHandler checks a new promotion against its game and
// the game's active promotions before persisting it.
//
// Example:
//
//	cmd, _ := NewCreatePromotionCommand(gameID, decimal.RequireFromString("80"), start, end)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrPriceNotBelowBase):
//	    // not cheaper than the game
//	case errors.Is(err, services.ErrOverlapConflict):
//	    // an active promotion already sits inside the period
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown game
//	}
type CreatePromotionCommandHandler struct {
	uowFactory UoWFactory
	pricing    services.PromotionPricing
	clock      kernel.Clock
}

func NewCreatePromotionCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreatePromotionCommandHandler {
	return CreatePromotionCommandHandler{
		uowFactory: uowFactory,
		pricing:    services.NewPromotionPricing(),
		clock:      clock,
	}
}

// Handle validates against the loaded game first and then asks the store,
// which also sees promotions created since the game was read.
func (h CreatePromotionCommandHandler) Handle(ctx context.Context, cmd CreatePromotionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	defer uow.Rollback(ctx)

	promotionRepo := uow.PromotionRepository()

	item, err := loadItem(ctx, uow.GameRepository(), cmd.GameID())
	if err != nil {
		return err
	}

	err = h.pricing.ValidateNewPromotion(item, cmd.Price(), cmd.StartsAt(), cmd.EndsAt())
	if err != nil {
		return pricingError(err, cmd.GameID())
	}

	overlaps, err := promotionRepo.HasOverlappingPromotion(ctx, cmd.GameID(), cmd.StartsAt(), cmd.EndsAt())
	if err != nil {
		return err
	}
	if overlaps {
		return pricingError(services.ErrOverlapConflict, cmd.GameID())
	}

	aggregate, err := promotion.NewPromotion(
		cmd.PromotionID(),
		cmd.GameID(),
		cmd.Price(),
		cmd.StartsAt(),
		cmd.EndsAt(),
		h.clock.Now(),
	)
	if err != nil {
		return errs.Validation(err)
	}

	if err = promotionRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return commit(ctx, uow, "create promotion")
}
