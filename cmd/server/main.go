package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mna-portal/societa-api/internal/api"
	"github.com/mna-portal/societa-api/internal/core/service"
	"github.com/mna-portal/societa-api/internal/infrastructure/config"
	"github.com/mna-portal/societa-api/internal/infrastructure/db/postgres"
	redisdb "github.com/mna-portal/societa-api/internal/infrastructure/db/redis"
	"github.com/mna-portal/societa-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// No logger yet: configuration (including JWT_SECRET) is a hard
		// precondition for starting at all.
		boot := logger.New(logger.Options{})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tokens, err := service.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	if err != nil {
		log.Fatal().Err(err).Msg("token manager initialisation failed")
	}

	pool, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable; public list cache disabled")
			rdb = nil
		} else {
			defer func() { _ = rdb.Close() }()
		}
	}

	e := api.NewRouter(pool, rdb, tokens, cfg, log)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting societa API server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	case err := <-serverErr:
		log.Fatal().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped gracefully")
}
