// @title           Cafe Marketplace API
// @version         1.0
// @description     Marketplace backend with token-based authentication and
// @description     ownership-scoped authorization for sellers and buyers.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/markobarraza/cafe-marketplace/docs"
	"github.com/markobarraza/cafe-marketplace/internal/api"
	"github.com/markobarraza/cafe-marketplace/internal/core/service"
	"github.com/markobarraza/cafe-marketplace/internal/infrastructure/config"
	"github.com/markobarraza/cafe-marketplace/internal/infrastructure/db/postgres"
	redisinfra "github.com/markobarraza/cafe-marketplace/internal/infrastructure/db/redis"
	"github.com/markobarraza/cafe-marketplace/internal/infrastructure/queue"
	"github.com/markobarraza/cafe-marketplace/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	recorder := service.NewAuditService(postgres.NewAuditRepository(pool), log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, recorder, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, pool, rdb, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
