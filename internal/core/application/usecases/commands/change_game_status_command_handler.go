package commands

import (
	"context"

	"gamestore/internal/core/domain/model/kernel"
)

// ChangeGameStatusCommandHandler activates or deactivates a game. Repeating
// the current status only refreshes the modification time.
//
// Example:
//
//	handler := NewChangeGameStatusCommandHandler(uowFactory, kernel.SystemClock{})
//	cmd, _ := NewChangeGameStatusCommand(gameID, false)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	// the game stays in existing libraries but can no longer be acquired
type ChangeGameStatusCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

func NewChangeGameStatusCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) ChangeGameStatusCommandHandler {
	return ChangeGameStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stamps the modification time even when the status does not change.
func (h ChangeGameStatusCommandHandler) Handle(ctx context.Context, cmd ChangeGameStatusCommand) error {
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

	if cmd.Active() {
		aggregate.Activate(h.clock.Now())
	} else {
		aggregate.Deactivate(h.clock.Now())
	}

	if err = gameRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return commit(ctx, uow, "change game status")
}
