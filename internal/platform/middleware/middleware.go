// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package middleware provides the cross-cutting HTTP processing chain.

Standard Stack:

  - Trace: RequestID generation for log correlation.
  - Log: per-request slog logger and a final access log line.
  - Guard: per-IP rate limiting and CORS.
  - Safe: panic recovery.
  - Auth: bearer-token authentication and the blog owner gate (authz.go).
*/
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/caboomlog/backend/internal/platform/constants"
	"github.com/caboomlog/backend/internal/platform/ctxutil"
	"github.com/caboomlog/backend/pkg/uuid"
)

// # Request Tracing

// RequestID attaches a correlation ID to every request, reusing the client's
// X-Request-ID when present.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(constants.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New()
			}

			ctx := ctxutil.WithRequestID(request.Context(), requestID)
			writer.Header().Set(constants.HeaderXRequestID, requestID)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Activity Logging

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// StructuredLogger injects a request-scoped logger and writes one access log line
// per request once the handler returns.
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			startTime := time.Now()

			requestLogger := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			ctx := ctxutil.WithLogger(request.Context(), requestLogger)
			wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			// Authenticate runs further down the chain and stores the caller on its
			// own copy of the request, so the user is read back through this holder.
			holder := &authHolder{}
			ctx = context.WithValue(ctx, authHolderKey{}, holder)

			next.ServeHTTP(wrappedWriter, request.WithContext(ctx))

			logLevel := slog.LevelInfo
			switch {
			case wrappedWriter.status >= 500:
				logLevel = slog.LevelError
			case wrappedWriter.status >= 400:
				logLevel = slog.LevelWarn
			}

			attrs := []any{
				slog.Int("status", wrappedWriter.status),
				slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
				slog.String("user_agent", request.UserAgent()),
			}
			if holder.userID != "" {
				attrs = append(attrs, slog.String("user_id", holder.userID))
			}

			requestLogger.Log(ctx, logLevel, "http_request_finished", attrs...)
		})
	}
}

type authHolderKey struct{}

type authHolder struct {
	userID string
}

// # Rate Limiting

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP with a token bucket.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	rps     rate.Limit
	burst   int
}

// NewRateLimiter creates a limiter and starts a sweeper that drops idle clients
// until ctx is cancelled.
func NewRateLimiter(ctx context.Context, rps float64, burst int) *RateLimiter {
	limiter := &RateLimiter{
		clients: make(map[string]*rateLimitClient),
		rps:     rate.Limit(rps),
		burst:   burst,
	}

	go limiter.sweep(ctx)

	return limiter
}

func (limiter *RateLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(constants.RateLimitCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			limiter.mu.Lock()
			for ip, client := range limiter.clients {
				if time.Since(client.lastSeen) > constants.RateLimitClientTTL {
					delete(limiter.clients, ip)
				}
			}
			limiter.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

// Allow reports whether the client at ip may make another request now.
func (limiter *RateLimiter) Allow(ip string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	client, found := limiter.clients[ip]
	if !found {
		client = &rateLimitClient{limiter: rate.NewLimiter(limiter.rps, limiter.burst)}
		limiter.clients[ip] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow()
}

// Handler rejects requests over the limit with 429.
func (limiter *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !limiter.Allow(RealIP(request)) {
			writeError(writer, http.StatusTooManyRequests, "RATE_LIMITED", "Rate limit exceeded")
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// # Reliability & Safety

// PanicRecovery recovers from panics, logs the stack trace and returns 500.
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				stackTrace := make([]byte, 4096)
				length := runtime.Stack(stackTrace, false)

				ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "panic_recovered",
					slog.Any("error", err),
					slog.String("stack", string(stackTrace[:length])),
				)

				writeError(writer, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
			}
		}()

		next.ServeHTTP(writer, request)
	})
}

// # Cross-Origin Resource Sharing

// CORSConfig is the part of the application config read by [CORS].
type CORSConfig interface {
	IsDevelopment() bool
	OriginSuffix() string
}

// CORS allows any origin in development and origins ending in the configured
// suffix otherwise.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			if cfg.IsDevelopment() || strings.HasSuffix(origin, cfg.OriginSuffix()) {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization, X-Request-ID")
				header.Set("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Set("Access-Control-Max-Age", "300")
				header.Add("Vary", constants.HeaderOrigin)
			}

			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # Middleware Helpers

// RealIP extracts the client IP, honouring common proxy headers.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}

// writeError outputs a minimal JSON error for failures raised before a handler runs.
func writeError(writer http.ResponseWriter, status int, code, message string) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]string{
		constants.FieldCode:  code,
		constants.FieldError: message,
	})
}
