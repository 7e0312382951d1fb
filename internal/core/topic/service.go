// Copyright (c) 2026 Caboomlog. All rights reserved.

package topic

import (
	"context"
	"log/slog"
)

// Service exposes the topic catalog to handlers and to the category engine.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a topic [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListTopics returns the catalog of root topics with their sub-topics.
func (service *Service) ListTopics(context context.Context) ([]*Topic, error) {
	return service.repo.ListTopics(context)
}

// Exists reports whether topicID references a catalog topic. Non-positive IDs never do.
func (service *Service) Exists(context context.Context, topicID int) (bool, error) {
	if topicID <= 0 {
		return false, nil
	}
	return service.repo.Exists(context, topicID)
}
