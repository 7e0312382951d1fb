// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package redis opens the Redis client used for the topic catalog cache.

Redis holds nothing that cannot be rebuilt from PostgreSQL, so every read through
it must tolerate a miss or an outage.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/caboomlog/backend/internal/platform/constants"
)

const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 500 * time.Millisecond
	writeTimeout = 500 * time.Millisecond
)

// NewClient parses a Redis URL and returns a client verified with a ping.
//
// # Parameters
//   - context: Context for the initial ping.
//   - redisURL: Redis connection URL.
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.PoolSize = 10
	options.MinIdleConns = 2
	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout

	client := redis.NewClient(options)

	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)

	return client, nil
}

// Ping verifies that the Redis client is healthy.
func Ping(context stdctx.Context, client redis.UniversalClient) error {
	pingCtx, cancel := stdctx.WithTimeout(context, constants.HealthCheckTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
