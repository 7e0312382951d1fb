// Copyright (c) 2026 Caboomlog. All rights reserved.

package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caboomlog/backend/internal/platform/respond"
)

// Handler serves the public topic catalog.
type Handler struct {
	service *Service
}

// NewHandler constructs a topic [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the catalog router, mounted at /api/v1/topics.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listTopics)
	return router
}

func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	topics, err := handler.service.ListTopics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, topics)
}
