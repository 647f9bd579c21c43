package commands

import (
	"context"
)

// RemovePromotionCommandHandler deletes a promotion. Library entries bought
// under it keep their purchase price and lose the reference.
//
// Example:
//
//	handler := NewRemovePromotionCommandHandler(uowFactory)
//	cmd, _ := NewRemovePromotionCommand(promotionID)
//	err := handler.Handle(ctx, cmd)
type RemovePromotionCommandHandler struct {
	uowFactory UoWFactory
}

func NewRemovePromotionCommandHandler(uowFactory UoWFactory) RemovePromotionCommandHandler {
	return RemovePromotionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemovePromotionCommandHandler) Handle(ctx context.Context, cmd RemovePromotionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	defer uow.Rollback(ctx)

	promotionRepo := uow.PromotionRepository()
	ownerRepo := uow.OwnerRepository()

	aggregate, err := promotionRepo.Get(ctx, cmd.PromotionID())
	if err != nil {
		return err
	}

	owners, err := ownerRepo.ListReferencingPromotion(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	for _, o := range owners {
		if o.DetachPromotion(aggregate.ID()) == 0 {
			continue
		}
		if err = ownerRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = promotionRepo.Remove(ctx, aggregate); err != nil {
		return err
	}

	return commit(ctx, uow, "remove promotion")
}
