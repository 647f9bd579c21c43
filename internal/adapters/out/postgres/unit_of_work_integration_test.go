package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "gamestore/internal/adapters/out/postgres"
	"gamestore/internal/adapters/out/postgres/pgtest"
	"gamestore/internal/core/domain/model/game"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/domain/model/owner"
	"gamestore/internal/core/domain/model/promotion"
	"gamestore/internal/core/ports"
	"gamestore/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work and the repositories
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory ports.UnitOfWorkFactory
	now     time.Time
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgres_adapter.Migrate(pg.DB))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("library_entries", "owners", "promotions", "games", "compensations"))
	suite.now = time.Now().UTC().Truncate(time.Microsecond)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIndependentUnits() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.GameRepository())
	suite.NotNil(uow1.PromotionRepository())
	suite.NotNil(uow1.OwnerRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_NothingReachesStoreBeforeCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()
	g := suite.newGame("Hollow Knight", "100.00")

	suite.Require().NoError(uow.GameRepository().Add(ctx, g))

	_, err := suite.factory.Create().GameRepository().Get(ctx, g.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	saved, err := uow.Commit(ctx)
	suite.Require().NoError(err)
	suite.True(saved)

	stored, err := suite.factory.Create().GameRepository().Get(ctx, g.ID())
	suite.Require().NoError(err)
	suite.Equal("Hollow Knight", stored.Name())
	suite.Equal("100.00", stored.Price().String())

	saved, err = uow.Commit(ctx)
	suite.Require().NoError(err)
	suite.False(saved, "the queue is cleared after commit")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsPendingChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	g := suite.newGame("Inside", "20.00")

	suite.Require().NoError(uow.GameRepository().Add(ctx, g))
	uow.Rollback(ctx)

	saved, err := uow.Commit(ctx)
	suite.Require().NoError(err)
	suite.False(saved)

	_, err = uow.GameRepository().Get(ctx, g.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_FailureLeavesNothingBehind() {
	ctx := context.Background()
	first := suite.newOwner("Ana", "ana@example.com")
	suite.commit(func(uow ports.UnitOfWork) error { return uow.OwnerRepository().Add(ctx, first) })

	uow := suite.factory.Create()
	g := suite.newGame("Limbo", "10.00")
	duplicate := suite.newOwner("Other Ana", "ANA@example.com")
	suite.Require().NoError(uow.GameRepository().Add(ctx, g))
	suite.Require().NoError(uow.OwnerRepository().Add(ctx, duplicate))

	saved, err := uow.Commit(ctx)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.False(saved)
	_, err = uow.GameRepository().Get(ctx, g.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "the game insert was rolled back with the owner insert")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGameRepository_LoadsPromotions() {
	ctx := context.Background()
	g := suite.newGame("Celeste", "100.00")
	p := suite.newPromotion(g, "80.00", suite.now.Add(-time.Hour), suite.now.Add(time.Hour))

	suite.commit(func(uow ports.UnitOfWork) error {
		if err := uow.GameRepository().Add(ctx, g); err != nil {
			return err
		}
		return uow.PromotionRepository().Add(ctx, p)
	})

	stored, err := suite.factory.Create().GameRepository().Get(ctx, g.ID())
	suite.Require().NoError(err)
	suite.Require().Len(stored.Promotions(), 1)
	suite.True(stored.Promotions()[0].ID().IsEqual(p.ID()))
	suite.Equal("80.00", stored.Promotions()[0].Price().String())
	suite.True(stored.Promotions()[0].StartsAt().Equal(p.StartsAt()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGameRepository_ExistsByName() {
	ctx := context.Background()
	publisher := "Team Cherry"
	released := time.Date(2017, 2, 24, 0, 0, 0, 0, time.UTC)
	g, err := game.NewGame(kernel.NewUUID(), "Hollow Knight",
		game.Profile{Publisher: &publisher, ReleaseDate: &released}, kernel.MustMoney("15.00"), suite.now)
	suite.Require().NoError(err)
	suite.commit(func(uow ports.UnitOfWork) error { return uow.GameRepository().Add(ctx, g) })

	repo := suite.factory.Create().GameRepository()

	exists, err := repo.ExistsByName(ctx, "HOLLOW knight", &publisher, &released)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = repo.ExistsByName(ctx, "Hollow Knight", nil, &released)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPromotionRepository_HasOverlappingPromotion() {
	ctx := context.Background()
	g := suite.newGame("Hades", "100.00")
	inner := suite.newPromotion(g, "80.00", suite.now.Add(time.Hour), suite.now.Add(2*time.Hour))
	suite.commit(func(uow ports.UnitOfWork) error {
		if err := uow.GameRepository().Add(ctx, g); err != nil {
			return err
		}
		return uow.PromotionRepository().Add(ctx, inner)
	})
	repo := suite.factory.Create().PromotionRepository()

	overlaps, err := repo.HasOverlappingPromotion(ctx, g.ID(), suite.now, suite.now.Add(3*time.Hour))
	suite.Require().NoError(err)
	suite.True(overlaps)

	overlaps, err = repo.HasOverlappingPromotion(ctx, g.ID(), suite.now.Add(90*time.Minute), suite.now.Add(3*time.Hour))
	suite.Require().NoError(err)
	suite.False(overlaps, "a partial overlap is not a conflict")

	inner.Deactivate(suite.now)
	suite.commit(func(uow ports.UnitOfWork) error { return uow.PromotionRepository().Update(ctx, inner) })

	overlaps, err = repo.HasOverlappingPromotion(ctx, g.ID(), suite.now, suite.now.Add(3*time.Hour))
	suite.Require().NoError(err)
	suite.False(overlaps, "inactive promotions do not conflict")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOwnerRepository_AcquireAndReload() {
	ctx := context.Background()
	g := suite.newGame("Celeste", "20.00")
	o := suite.newOwner("Ana", "ana@example.com")
	suite.commit(func(uow ports.UnitOfWork) error {
		if err := uow.GameRepository().Add(ctx, g); err != nil {
			return err
		}
		return uow.OwnerRepository().Add(ctx, o)
	})

	_, err := o.Acquire(kernel.NewUUID(), g.ID(), g.Price(), nil, suite.now)
	suite.Require().NoError(err)
	suite.commit(func(uow ports.UnitOfWork) error { return uow.OwnerRepository().Update(ctx, o) })

	stored, err := suite.factory.Create().OwnerRepository().GetByEmail(ctx, " ANA@example.com ")
	suite.Require().NoError(err)
	suite.Require().Len(stored.Library(), 1)
	suite.True(stored.Owns(g.ID()))
	suite.Equal("20.00", stored.Library()[0].PurchasePrice().String())

	exists, err := suite.factory.Create().OwnerRepository().ExistsByEmail(ctx, "ana@example.com")
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRemovePromotion_DetachesEntriesAndKeepsPrice() {
	ctx := context.Background()
	g := suite.newGame("Hades", "100.00")
	p := suite.newPromotion(g, "80.00", suite.now.Add(-time.Hour), suite.now.Add(time.Hour))
	o := suite.newOwner("Ana", "ana@example.com")
	pid := p.ID()
	_, err := o.Acquire(kernel.NewUUID(), g.ID(), p.Price(), &pid, suite.now)
	suite.Require().NoError(err)
	suite.commit(func(uow ports.UnitOfWork) error {
		if err := uow.GameRepository().Add(ctx, g); err != nil {
			return err
		}
		if err := uow.PromotionRepository().Add(ctx, p); err != nil {
			return err
		}
		return uow.OwnerRepository().Add(ctx, o)
	})

	// Act
	suite.commit(func(uow ports.UnitOfWork) error {
		holders, err := uow.OwnerRepository().ListReferencingPromotion(ctx, p.ID())
		if err != nil {
			return err
		}
		suite.Require().Len(holders, 1)
		for _, h := range holders {
			h.DetachPromotion(p.ID())
			if err = uow.OwnerRepository().Update(ctx, h); err != nil {
				return err
			}
		}
		return uow.PromotionRepository().Remove(ctx, p)
	})

	// Assert
	stored, err := suite.factory.Create().OwnerRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(stored.Library(), 1)
	suite.Nil(stored.Library()[0].PromotionID())
	suite.Equal("80.00", stored.Library()[0].PurchasePrice().String())

	_, err = suite.factory.Create().PromotionRepository().Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRemoveGame_ForfeitsEntriesAndDeletesPromotions() {
	ctx := context.Background()
	g := suite.newGame("Limbo", "10.00")
	kept := suite.newGame("Inside", "20.00")
	p := suite.newPromotion(g, "5.00", suite.now.Add(-time.Hour), suite.now.Add(time.Hour))
	o := suite.newOwner("Ana", "ana@example.com")
	_, err := o.Acquire(kernel.NewUUID(), g.ID(), g.Price(), nil, suite.now)
	suite.Require().NoError(err)
	_, err = o.Acquire(kernel.NewUUID(), kept.ID(), kept.Price(), nil, suite.now)
	suite.Require().NoError(err)
	suite.commit(func(uow ports.UnitOfWork) error {
		for _, item := range []*game.Game{g, kept} {
			if err := uow.GameRepository().Add(ctx, item); err != nil {
				return err
			}
		}
		if err := uow.PromotionRepository().Add(ctx, p); err != nil {
			return err
		}
		return uow.OwnerRepository().Add(ctx, o)
	})

	suite.commit(func(uow ports.UnitOfWork) error {
		holders, err := uow.OwnerRepository().ListHoldingGame(ctx, g.ID())
		if err != nil {
			return err
		}
		suite.Require().Len(holders, 1)
		for _, h := range holders {
			suite.True(h.ForfeitGame(g.ID()))
			if err = uow.OwnerRepository().Update(ctx, h); err != nil {
				return err
			}
		}
		return uow.GameRepository().Remove(ctx, g)
	})

	stored, err := suite.factory.Create().OwnerRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(stored.Library(), 1)
	suite.True(stored.Owns(kept.ID()))

	_, err = suite.factory.Create().PromotionRepository().Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.factory.Create().GameRepository().Get(ctx, g.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRemoveOwner_DeletesEntriesThenOwner() {
	ctx := context.Background()
	g := suite.newGame("Celeste", "20.00")
	o := suite.newOwner("Ana", "ana@example.com")
	_, err := o.Acquire(kernel.NewUUID(), g.ID(), g.Price(), nil, suite.now)
	suite.Require().NoError(err)
	suite.commit(func(uow ports.UnitOfWork) error {
		if err := uow.GameRepository().Add(ctx, g); err != nil {
			return err
		}
		return uow.OwnerRepository().Add(ctx, o)
	})

	suite.commit(func(uow ports.UnitOfWork) error { return uow.OwnerRepository().Remove(ctx, o) })

	_, err = suite.factory.Create().OwnerRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	var entries int64
	suite.Require().NoError(suite.pg.DB.Table("library_entries").Count(&entries).Error)
	suite.Zero(entries)
	_, err = suite.factory.Create().GameRepository().Get(ctx, g.ID())
	suite.Require().NoError(err, "the game is untouched")
}

func (suite *UnitOfWorkIntegrationTestSuite) commit(register func(uow ports.UnitOfWork) error) {
	uow := suite.factory.Create()
	defer uow.Rollback(context.Background())

	suite.Require().NoError(register(uow))
	saved, err := uow.Commit(context.Background())
	suite.Require().NoError(err)
	suite.Require().True(saved)
}

func (suite *UnitOfWorkIntegrationTestSuite) newGame(name, price string) *game.Game {
	g, err := game.NewGame(kernel.NewUUID(), name, game.Profile{}, kernel.MustMoney(price), suite.now)
	suite.Require().NoError(err)
	return g
}

func (suite *UnitOfWorkIntegrationTestSuite) newPromotion(g *game.Game, price string, start, end time.Time) *promotion.Promotion {
	p, err := promotion.NewPromotion(kernel.NewUUID(), g.ID(), kernel.MustMoney(price), start, end, suite.now)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) newOwner(name, email string) *owner.Owner {
	o, err := owner.NewOwner(kernel.NewUUID(), name, email, suite.now)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires docker")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
