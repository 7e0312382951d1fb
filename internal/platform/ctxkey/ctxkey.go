// Copyright (c) 2026 Caboomlog. All rights reserved.

// Package ctxkey defines the typed keys under which per-request values live in a
// [context.Context]. Read them through ctxutil.
package ctxkey

type key string

const (
	// KeyRequestID holds the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser holds the authenticated caller ([*sec.AuthClaims]).
	KeyUser key = "user"

	// KeyLogger holds the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
