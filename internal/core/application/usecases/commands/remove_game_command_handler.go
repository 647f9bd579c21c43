package commands

import (
	"context"
)

// RemoveGameCommandHandler deletes a game with its promotions. Every owner
// holding the game forfeits it in the same commit.
//
// Example:
//
//	handler := NewRemoveGameCommandHandler(uowFactory)
//	cmd, _ := NewRemoveGameCommand(gameID)
//
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown game
//	}
type RemoveGameCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRemoveGameCommandHandler(uowFactory CatalogUoWFactory) RemoveGameCommandHandler {
	return RemoveGameCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveGameCommandHandler) Handle(ctx context.Context, cmd RemoveGameCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	defer uow.Rollback(ctx)

	gameRepo := uow.GameRepository()
	ownerRepo := uow.OwnerRepository()

	aggregate, err := gameRepo.Get(ctx, cmd.GameID())
	if err != nil {
		return err
	}

	holders, err := ownerRepo.ListHoldingGame(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	for _, holder := range holders {
		if !holder.ForfeitGame(aggregate.ID()) {
			continue
		}
		if err = ownerRepo.Update(ctx, holder); err != nil {
			return err
		}
	}

	if err = gameRepo.Remove(ctx, aggregate); err != nil {
		return err
	}

	return commit(ctx, uow, "remove game")
}
