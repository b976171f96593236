package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/orgstack/employee-management/internal/api"
	"github.com/orgstack/employee-management/internal/core/service"
	"github.com/orgstack/employee-management/internal/infrastructure/config"
	mongodb "github.com/orgstack/employee-management/internal/infrastructure/db/mongo"
	redisdb "github.com/orgstack/employee-management/internal/infrastructure/db/redis"
	"github.com/orgstack/employee-management/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	deptRepo := mongodb.NewDepartmentRepository(db)
	empRepo := mongodb.NewEmployeeRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":       userRepo.EnsureIndexes,
		"departments": deptRepo.EnsureIndexes,
		"employees":   empRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to create indexes")
		}
	}

	// Seed the admin account before the server accepts requests; role
	// updates are admin-gated, so a fresh install needs this to be usable.
	if err := service.EnsureAdminUser(ctx, userRepo, cfg.AdminPassword, log); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin user")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	e := api.NewRouter(api.Options{
		Mongo:        db,
		Redis:        rdb,
		AuthCacheTTL: cfg.Redis.AuthCacheTTL,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
