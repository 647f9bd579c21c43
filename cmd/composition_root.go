package cmd

import (
	"context"
	"time"

	httpadapter "gamestore/internal/adapters/in/http"
	"gamestore/internal/adapters/out/identity"
	"gamestore/internal/adapters/out/postgres"
	"gamestore/internal/adapters/out/postgres/compensationrepo"
	"gamestore/internal/core/application/saga"
	"gamestore/internal/core/application/usecases/commands"
	"gamestore/internal/core/application/usecases/queries"
	"gamestore/internal/core/domain/model/kernel"
	"gamestore/internal/core/ports"
	"gamestore/internal/jobs"
	"gamestore/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const sessionKeyPrefix = "gamestore:sessions"

type CompositionRoot struct {
	cfg        Config
	domainDB   *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	identity   ports.IdentityGateway
	clock      kernel.Clock
	log        *logger.Logger
}

func NewCompositionRoot(
	cfg Config,
	domainDB *gorm.DB,
	identityDB *gorm.DB,
	rdb redis.UniversalClient,
	log *logger.Logger,
) (*CompositionRoot, error) {
	clock := kernel.SystemClock{}

	tokens, err := identity.NewTokenIssuer(identity.TokenConfig{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	}, clock)
	if err != nil {
		return nil, err
	}
	sessions := identity.NewRedisSessionStore(rdb, sessionKeyPrefix)

	return &CompositionRoot{
		cfg:        cfg,
		domainDB:   domainDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(domainDB),
		identity:   identity.NewGateway(identityDB, sessions, tokens, clock, log),
		clock:      clock,
		log:        log,
	}, nil
}

func (c *CompositionRoot) ownerUoWFactory() commands.OwnerUoWFactory {
	return FuncOwnerUoWFactory(func() commands.OwnerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAccountCoordinator() *saga.AccountCoordinator {
	return saga.NewAccountCoordinator(
		c.ownerUoWFactory(),
		c.identity,
		compensationrepo.NewGormCompensationLog(c.domainDB),
		c.clock,
		c.log,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		Accounts: c.CreateAccountCoordinator(),
		Identity: c.identity,

		CreateGame:            commands.NewCreateGameCommandHandler(c.catalogUoWFactory(), c.clock),
		AlterGame:             commands.NewAlterGameCommandHandler(c.catalogUoWFactory(), c.clock),
		ChangeGameStatus:      commands.NewChangeGameStatusCommandHandler(c.catalogUoWFactory(), c.clock),
		RemoveGame:            commands.NewRemoveGameCommandHandler(c.catalogUoWFactory()),
		CreatePromotion:       commands.NewCreatePromotionCommandHandler(c.fullUoWFactory(), c.clock),
		AlterPromotion:        commands.NewAlterPromotionCommandHandler(c.fullUoWFactory(), c.clock),
		ChangePromotionStatus: commands.NewChangePromotionStatusCommandHandler(c.fullUoWFactory(), c.clock),
		RemovePromotion:       commands.NewRemovePromotionCommandHandler(c.fullUoWFactory()),
		AcquireGame:           commands.NewAcquireGameCommandHandler(c.catalogUoWFactory(), c.clock),
		Authenticate:          commands.NewAuthenticateCommandHandler(c.identity),
		RefreshToken:          commands.NewRefreshTokenCommandHandler(c.identity),
		ChangeSecret:          commands.NewChangeSecretCommandHandler(c.identity),

		SearchGames:      queries.NewSearchGamesQueryHandler(c.domainDB, c.clock),
		GetGame:          queries.NewGetGameQueryHandler(c.domainDB, c.clock),
		SearchPromotions: queries.NewSearchPromotionsQueryHandler(c.domainDB),
		SearchOwners:     queries.NewSearchOwnersQueryHandler(c.domainDB),
		GetOwner:         queries.NewGetOwnerQueryHandler(c.domainDB),
		GetOwnerLibrary:  queries.NewGetOwnerLibraryQueryHandler(c.domainDB),
	}, c.log)
}

// CreateJobs returns the scheduled jobs enabled by the configuration.
func (c *CompositionRoot) CreateJobs() []jobs.Job {
	if c.cfg.CompensationSchedule == "" {
		return nil
	}
	return []jobs.Job{
		jobs.NewCompensationJob(
			c.cfg.CompensationSchedule,
			compensationrepo.NewGormCompensationLog(c.domainDB),
			c.ownerUoWFactory(),
			c.identity,
			c.clock,
			c.log,
		),
	}
}

// SeedAdmin registers the configured administrator once and grants it every
// role. It does nothing when ADMIN_EMAIL is empty or the owner exists.
func (c *CompositionRoot) SeedAdmin(ctx context.Context) error {
	if c.cfg.AdminEmail == "" {
		return nil
	}
	return seedAdmin(ctx, c.ownerUoWFactory(), c.CreateAccountCoordinator(), c.cfg, c.log)
}

func seedAdmin(
	ctx context.Context,
	uowFactory commands.OwnerUoWFactory,
	coordinator *saga.AccountCoordinator,
	cfg Config,
	log *logger.Logger,
) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	uow := uowFactory.Create()
	defer uow.Rollback(ctx)

	exists, err := uow.OwnerRepository().ExistsByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return err
	}
	if exists {
		log.Debug("admin already seeded", "email", cfg.AdminEmail)
		return nil
	}

	register, err := commands.NewRegisterOwnerCommand(cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin, err := coordinator.Register(ctx, register)
	if err != nil {
		return err
	}

	setRoles, err := commands.NewSetRolesCommand(admin.ID(), []ports.Role{ports.RoleUser, ports.RoleAdmin})
	if err != nil {
		return err
	}
	if err = coordinator.SetRoles(ctx, setRoles); err != nil {
		return err
	}

	log.Info("admin seeded", "email", admin.Email())
	return nil
}

type FuncOwnerUoWFactory func() commands.OwnerUoW

func (f FuncOwnerUoWFactory) Create() commands.OwnerUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
