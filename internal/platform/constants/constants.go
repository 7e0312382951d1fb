// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package constants holds the fixed values shared across the caboomlog API:
server timeouts, rate limits, header names and cache key prefixes.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "caboomlog-api"
	AppVersion = "0.1.0-dev"

	// MetricsNamespace prefixes every Prometheus series.
	MetricsNamespace = "caboomlog"
)

// # Server Timing

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout bounds every request, store calls included.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long in-flight requests may run after SIGTERM.
	ShutdownTimeout = 30 * time.Second

	// HealthCheckTimeout bounds each dependency ping in /ready.
	HealthCheckTimeout = 2 * time.Second
)

// # Rate Limiting

const (
	DefaultRateLimitRPS   = 50.0
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often idle IP entries are swept.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is the idle time after which an IP entry is dropped.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the 'iss' claim of access tokens issued by the account service.
	AuthIssuer = "caboomlog.com"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Redis Keys

const (
	// RedisKeyTopicCatalog caches the full topic tree.
	RedisKeyTopicCatalog = "topic:catalog"
)
