// Copyright (c) 2026 Caboomlog. All rights reserved.

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/caboomlog/backend/internal/platform/constants"
	"github.com/caboomlog/backend/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func(ctx context.Context) error

	// CheckCache pings the Redis client.
	CheckCache func(ctx context.Context) error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// readiness handles GET /ready.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 2)
	isSystemReady := true

	for _, dependency := range []struct {
		name  string
		check func(ctx context.Context) error
	}{
		{name: "postgres", check: handler.dependencies.CheckDatabase},
		{name: "redis", check: handler.dependencies.CheckCache},
	} {
		if dependency.check == nil {
			continue
		}

		result := checkResult{Name: dependency.name, IsOK: true}
		if err := dependency.check(request.Context()); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", dependency.name), slog.Any("error", err))
		}
		results = append(results, result)
	}

	responseStatus := "ready"
	httpStatus := http.StatusOK
	if !isSystemReady {
		responseStatus = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: responseStatus,
		constants.FieldChecks: results,
	}})
}
