// Copyright (c) 2026 Caboomlog. All rights reserved.

// Package ctxutil reads and writes the per-request values keyed by [ctxkey].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/caboomlog/backend/internal/platform/ctxkey"
	"github.com/caboomlog/backend/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID returns the request ID, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger returns the request logger, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// # Identity

// WithAuthUser returns a copy of ctx carrying the verified caller.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser returns the verified caller, or nil for anonymous requests.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, _ := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	return claims
}
