// Package postgres provides the GORM-based Unit of Work for the domain store.
//
// Repositories obtained from a unit of work read straight from the store and
// queue their writes. Commit applies the queue in registration order inside a
// single transaction and reports whether any row changed:
//
//	uow := factory.Create()
//	defer uow.Rollback(ctx)
//
//	if err := uow.OwnerRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	saved, err := uow.Commit(ctx)
//	if err != nil {
//	    return err
//	}
//	if !saved {
//	    // nothing reached the store
//	}
//
// A unit of work is not safe for concurrent use; create one per command.
package postgres

import (
	"context"
	"errors"

	"gamestore/internal/adapters/out/postgres/gamerepo"
	"gamestore/internal/adapters/out/postgres/ownerrepo"
	"gamestore/internal/adapters/out/postgres/promotionrepo"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/errs"

	"gorm.io/gorm"
)

// pendingChange is one queued write together with the aggregate it came from.
type pendingChange struct {
	ID        kernel.UUID
	Aggregate any
	apply     func(tx *gorm.DB) (int64, error)
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		pending: make([]pendingChange, 0),
	}
}

// GormUnitOfWork queues aggregate writes until Commit.
type GormUnitOfWork struct {
	db      *gorm.DB
	pending []pendingChange
}

// Commit applies every pending change in order within one transaction and
// returns true when at least one row was affected. The queue is cleared
// whatever the outcome. Duplicate keys surface as errs.ConflictError.
func (uow *GormUnitOfWork) Commit(ctx context.Context) (bool, error) {
	pending := uow.pending
	uow.pending = make([]pendingChange, 0)

	if len(pending) == 0 {
		return false, nil
	}

	var affected int64
	err := uow.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, change := range pending {
			rows, err := change.apply(tx)
			if err != nil {
				return err
			}
			affected += rows
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, errs.NewConflictErrorWithCause("record already exists", err)
		}
		return false, err
	}

	return affected > 0, nil
}

// Rollback drops pending changes. Nothing has reached the store yet, so
// there is nothing to undo there.
func (uow *GormUnitOfWork) Rollback(_ context.Context) {
	uow.pending = make([]pendingChange, 0)
}

func (uow *GormUnitOfWork) GameRepository() ports.GameRepository {
	return gamerepo.NewGormGameRepository(uow.db, uow)
}

func (uow *GormUnitOfWork) PromotionRepository() ports.PromotionRepository {
	return promotionrepo.NewGormPromotionRepository(uow.db, uow)
}

func (uow *GormUnitOfWork) OwnerRepository() ports.OwnerRepository {
	return ownerrepo.NewGormOwnerRepository(uow.db, uow)
}

// TrackChange queues a write registered by a repository.
func (uow *GormUnitOfWork) TrackChange(id kernel.UUID, aggregate any, apply func(tx *gorm.DB) (int64, error)) {
	uow.pending = append(uow.pending, pendingChange{
		ID:        id,
		Aggregate: aggregate,
		apply:     apply,
	})
}

// Pending reports how many changes are waiting for Commit.
func (uow *GormUnitOfWork) Pending() int {
	return len(uow.pending)
}
