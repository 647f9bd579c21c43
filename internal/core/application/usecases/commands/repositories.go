// Package commands contains the business operations that modify the catalog,
// the promotions and the owners' libraries.
// Every handler follows the same pattern: validate the command, open a unit of
// work, queue the writes through repositories, commit once.
package commands

import (
	"context"
	"errors"

	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/errs"
)

// ErrNothingCommitted is the cause of the fatal error raised when a commit
// that had to write something reports no affected rows.
var ErrNothingCommitted = errors.New("commit affected no rows")

// Unit of Work interfaces narrow ports.UnitOfWork to what each handler touches.
type (
	// TxManager applies or discards the queued writes.
	TxManager interface {
		Commit(ctx context.Context) (bool, error)
		Rollback(ctx context.Context)
	}

	GameRepoFactory interface {
		GameRepository() ports.GameRepository
	}

	PromotionRepoFactory interface {
		PromotionRepository() ports.PromotionRepository
	}

	OwnerRepoFactory interface {
		OwnerRepository() ports.OwnerRepository
	}

	// OwnerUoW is used by operations that only touch owners.
	OwnerUoW interface {
		TxManager
		OwnerRepoFactory
	}

	OwnerUoWFactory interface {
		Create() OwnerUoW
	}

	// CatalogUoW covers games and the libraries holding them.
	CatalogUoW interface {
		TxManager
		GameRepoFactory
		OwnerRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UoW spans every aggregate. Promotion handlers need all three
	// repositories: the game for pricing rules and owners for detaching.
	//
	// Example:
	//   uow := factory.Create()
	//   defer uow.Rollback(ctx)
	//
	//   promotionRepo := uow.PromotionRepository()
	//   ownerRepo := uow.OwnerRepository()
	//   // ... queue writes
	//
	//   ok, err := uow.Commit(ctx)
	UoW interface {
		TxManager
		GameRepoFactory
		PromotionRepoFactory
		OwnerRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// commit applies the queued writes. A store error is returned as is so that
// conflicts keep their type; an empty result is a fatal inconsistency.
func commit(ctx context.Context, tx TxManager, operation string) error {
	ok, err := tx.Commit(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewFatalInconsistencyError(operation, ErrNothingCommitted)
	}
	return nil
}
