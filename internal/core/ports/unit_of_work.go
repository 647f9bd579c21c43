package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
// Units of work are never shared between requests.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork collects pending changes registered through its repositories
// and applies them in one store transaction.
//
// Example:
//
//	uow := factory.Create()
//	defer uow.Rollback(ctx)
//
//	if err := uow.GameRepository().Add(ctx, g); err != nil {
//	    return err
//	}
//	saved, err := uow.Commit(ctx)
type UnitOfWork interface {
	// Commit applies the pending changes in the order they were registered
	// and reports whether any row was affected. Committing with nothing
	// pending returns false and no error. A store error rolls everything back.
	Commit(ctx context.Context) (bool, error)

	// Rollback discards pending changes. Safe to call after Commit.
	Rollback(ctx context.Context)

	GameRepository() GameRepository
	PromotionRepository() PromotionRepository
	OwnerRepository() OwnerRepository
}
