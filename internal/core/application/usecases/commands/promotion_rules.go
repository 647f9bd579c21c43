package commands

import (
	"context"
	"errors"

	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/services"
	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/errs"
)

// loadItem reads the game a promotion belongs to. A missing game is returned
// as nil so that the pricing rules report it.
func loadItem(ctx context.Context, repo ports.GameRepository, gameID kernel.UUID) (*game.Game, error) {
	item, err := repo.Get(ctx, gameID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// pricingError maps a pricing rule violation to the error taxonomy.
func pricingError(err error, gameID kernel.UUID) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrItemNotFound):
		return errs.NewObjectNotFoundErrorWithCause("game id", gameID, err)
	case errors.Is(err, services.ErrPriceNotBelowBase), errors.Is(err, services.ErrOverlapConflict):
		return errs.NewConflictErrorWithCause(err.Error(), err)
	default:
		return err
	}
}
