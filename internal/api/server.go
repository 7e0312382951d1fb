// Copyright (c) 2026 Caboomlog. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It is the composition root for the chi router.
  - Only this package and cmd/api construct net/http servers.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/caboomlog/backend/internal/core/category"
	"github.com/caboomlog/backend/internal/core/topic"
	"github.com/caboomlog/backend/internal/platform/config"
	"github.com/caboomlog/backend/internal/platform/constants"
	"github.com/caboomlog/backend/internal/platform/metrics"
	"github.com/caboomlog/backend/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Category manages the per-blog category hierarchy.
	Category *category.Handler

	// Topic serves the topic catalog.
	Topic *topic.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The rate limiter's sweeper stops when ctx is cancelled.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, collector *metrics.Collector, h Handlers) *Server {
	r := chi.NewRouter()
	limiter := middleware.NewRateLimiter(ctx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(collector.Middleware)
	r.Use(middleware.PanicRecovery)
	r.Use(limiter.Handler)
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(chimw.CleanPath)
	r.Use(middleware.Authenticate(verifier))

	// # Infrastructure Endpoints
	// Unauthenticated probes for container orchestration and scraping.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/blogs/{"+category.BlogParam+"}/categories", h.Category.Routes())
		api.Mount("/topics", h.Topic.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the root router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
