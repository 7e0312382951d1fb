// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package config maps environment variables onto a typed [Config] using caarlos0/env.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

The configuration is loaded once at startup and handed to constructors. Nothing in
this package is global.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the caboomlog API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// TopicCacheTTL is how long the topic catalog stays cached in Redis.
	TopicCacheTTL time.Duration `env:"TOPIC_CACHE_TTL" envDefault:"10m"`

	// Access tokens are minted by the account service and only verified here.
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"caboomlog.com"`
}

// # Configuration Loading

// Load parses environment variables into a [Config].
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.TopicCacheTTL <= 0 {
		return nil, fmt.Errorf("config: TOPIC_CACHE_TTL must be positive, got %s", cfg.TopicCacheTTL)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// OriginSuffix returns the domain suffix accepted by the CORS middleware.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
