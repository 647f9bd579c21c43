package commands

import (
	"context"

	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/pkg/errs"
)

// CreateGameCommandHandler registers new games. A game whose name (ignoring
// case), publisher and release date match an existing one is rejected.
//
// Example:
//
//	handler := NewCreateGameCommandHandler(uowFactory, kernel.SystemClock{})
//	cmd, _ := NewCreateGameCommand("Hades", game.Profile{}, decimal.RequireFromString("49.99"))
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Println(cmd.GameID()) // id of the new game
type CreateGameCommandHandler struct {
	uowFactory CatalogUoWFactory
	clock      kernel.Clock
}

func NewCreateGameCommandHandler(uowFactory CatalogUoWFactory, clock kernel.Clock) CreateGameCommandHandler {
	return CreateGameCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns errs.ConflictError for a duplicate and otherwise persists
// the game in a single commit.
func (h CreateGameCommandHandler) Handle(ctx context.Context, cmd CreateGameCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	defer uow.Rollback(ctx)

	gameRepo := uow.GameRepository()
	profile := cmd.Profile()

	exists, err := gameRepo.ExistsByName(ctx, cmd.Name(), profile.Publisher, profile.ReleaseDate)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError("a game with this name, publisher and release date already exists")
	}

	aggregate, err := game.NewGame(cmd.GameID(), cmd.Name(), profile, cmd.Price(), h.clock.Now())
	if err != nil {
		return errs.Validation(err)
	}

	if err = gameRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return commit(ctx, uow, "create game")
}
