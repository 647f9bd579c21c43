package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamestore/cmd"
	"gamestore/internal/adapters/out/identity"
	"gamestore/internal/adapters/out/postgres"
	"gamestore/internal/jobs"
	"gamestore/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	appLog, err := logger.New(configs.LogMode)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer appLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, appLog); err != nil {
		appLog.Fatal("application stopped", "error", err)
	}
	appLog.Info("application stopped")
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func run(ctx context.Context, configs cmd.Config, appLog *logger.Logger) error {
	domainDB, err := openDB(configs.Domain)
	if err != nil {
		return err
	}
	identityDB, err := openDB(configs.Identity)
	if err != nil {
		return err
	}
	if err = postgres.Migrate(domainDB); err != nil {
		return err
	}
	if err = identity.Migrate(identityDB); err != nil {
		return err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	defer rdb.Close()
	if err = rdb.Ping(ctx).Err(); err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, domainDB, identityDB, rdb, appLog)
	if err != nil {
		return err
	}
	if err = app.SeedAdmin(ctx); err != nil {
		return err
	}

	server := app.CreateHTTPServer()
	jobManager := jobs.NewJobManager(appLog, app.CreateJobs()...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(":" + configs.HTTPPort)
	})
	g.Go(func() error {
		if err := jobManager.StartAll(); err != nil {
			return err
		}
		<-gctx.Done()
		jobManager.StopAll()
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return server.Shutdown(context.Background(), shutdownTimeout)
	})

	return g.Wait()
}

func openDB(cfg cmd.DBConfig) (*gorm.DB, error) {
	return gorm.Open(postgresdriver.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
}
