package commands

import (
	"context"

	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
)

// AlterGameCommandHandler edits a game in place. Promotions are left as they
// are; the next edit of each one is checked against the new base price.
//
// Example:
//
//	handler := NewAlterGameCommandHandler(uowFactory, kernel.SystemClock{})
//	cmd, _ := NewAlterGameCommand(gameID, "Hades II", game.Profile{}, decimal.RequireFromString("39.90"))
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("alter game failed: %w", err)
//	}
type AlterGameCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

func NewAlterGameCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) AlterGameCommandHandler {
	return AlterGameCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h AlterGameCommandHandler) Handle(ctx context.Context, cmd AlterGameCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	defer uow.Rollback(ctx)

	gameRepo := uow.GameRepository()

	aggregate, err := gameRepo.Get(ctx, cmd.GameID())
	if err != nil {
		return err
	}

	if err = aggregate.Alter(cmd.Name(), cmd.Profile(), cmd.Price(), h.clock.Now()); err != nil {
		return errs.Validation(err)
	}

	if err = gameRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return commit(ctx, uow, "alter game")
}
