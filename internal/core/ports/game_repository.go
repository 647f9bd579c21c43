// Package ports defines the contracts between the application core and the
// stores behind it: the domain store repositories, the unit of work, the
// identity store and the compensation log.
package ports

import (
	"context"
	"time"

	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
)

// GameRepository defines the persistence contract for game aggregates.
// Write methods only register a pending change; nothing reaches the store
// before UnitOfWork.Commit.
type GameRepository interface {
	// Add registers a new game for insertion.
	Add(ctx context.Context, aggregate *game.Game) error

	// Update registers the game's current state for writing.
	Update(ctx context.Context, aggregate *game.Game) error

	// Remove registers the deletion of the game and of its promotions.
	// Library entries holding the game must be forfeited by the caller first.
	Remove(ctx context.Context, aggregate *game.Game) error

	// Get loads a game together with all of its promotions.
	// Returns errs.ObjectNotFoundError when no game has the id.
	Get(ctx context.Context, id kernel.UUID) (*game.Game, error)

	// ExistsByName reports whether a game with the same case-insensitive name,
	// publisher and release date is already in the catalog.
	ExistsByName(ctx context.Context, name string, publisher *string, releaseDate *time.Time) (bool, error)
}
