// Copyright (c) 2026 Caboomlog. All rights reserved.

// Command api is the entry point for the caboomlog category API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caboomlog/backend/internal/api"
	"github.com/caboomlog/backend/internal/core/blogmember"
	"github.com/caboomlog/backend/internal/core/category"
	"github.com/caboomlog/backend/internal/core/topic"
	"github.com/caboomlog/backend/internal/platform/config"
	"github.com/caboomlog/backend/internal/platform/constants"
	"github.com/caboomlog/backend/internal/platform/metrics"
	"github.com/caboomlog/backend/internal/platform/migration"
	pgstore "github.com/caboomlog/backend/internal/platform/postgres"
	redisstore "github.com/caboomlog/backend/internal/platform/redis"
	"github.com/caboomlog/backend/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. A deadline catches misconfiguration quickly.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Verification ─────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize token service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	collector := metrics.NewCollector(constants.MetricsNamespace)

	topicRepository := topic.NewCachedRepository(topic.NewPostgresRepository(pool), rdb, cfg.TopicCacheTTL, collector, log)
	topicService := topic.NewService(topicRepository, log)

	// Migrations may have reseeded the catalog, so a copy cached by an older release is stale.
	if err := topicRepository.Invalidate(startupCtx); err != nil {
		log.Warn("topic_catalog_invalidate_failed", slog.Any("error", err))
	}

	memberService := blogmember.NewService(blogmember.NewPostgresRepository(pool), log)

	categoryService := category.NewService(category.NewPostgresRepository(pool), topicService, collector, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokens, collector, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Category:  category.NewHandler(categoryService, memberService),
		Topic:     topic.NewHandler(topicService),
	})

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		return
	}

	log.Info("server_stopped")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String(constants.FieldApp, "caboomlog"))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// It is limited to startup wiring.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
