// Copyright (c) 2026 Caboomlog. All rights reserved.

// Package postgres opens and checks the PostgreSQL connection pool shared by every
// repository.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caboomlog/backend/internal/platform/constants"
)

// Pool settings sized for a read-heavy category workload.
const (
	maxConns          = 20
	minConns          = 2
	maxConnLifetime   = 60 * time.Minute
	maxConnIdleTime   = 10 * time.Minute
	healthCheckPeriod = 1 * time.Minute
	connectTimeout    = 5 * time.Second
)

// NewPool creates a pool and verifies it with a ping.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - dsn: A libpq-compatible connection string or postgres:// URL.
//   - logger: Structured logger for pool-level events.
func NewPool(ctx context.Context, dsn string, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	// Every physical connection gets a statement timeout no longer than a request.
	poolConfig.AfterConnect = func(ctx context.Context, connection *pgx.Conn) error {
		timeoutQuery := fmt.Sprintf("SET statement_timeout = '%ds'", int(constants.GlobalRequestTimeout.Seconds()))
		_, err := connection.Exec(ctx, timeoutQuery)
		return err
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	if err := Ping(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	stats := pool.Stat()
	logger.Info("postgres_pool_connected",
		slog.Int("max_conns", int(stats.MaxConns())),
		slog.Int("total_conns", int(stats.TotalConns())),
	)

	return pool, nil
}

// Ping verifies that the pool can reach the database.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, constants.HealthCheckTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}

	return nil
}
