// Copyright (c) 2026 Caboomlog. All rights reserved.

package blogmember

import (
	"context"
	"errors"
	"log/slog"

	"github.com/caboomlog/backend/internal/platform/dberr"
	"github.com/caboomlog/backend/internal/platform/sec"
)

// Service answers blog permission questions for the HTTP layer.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a membership [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
IsOwner reports whether userID holds the owner role in blogID.

Non-members and rows carrying an unknown role are not owners. Only store failures
are returned as errors.

Parameters:
  - context: context.Context
  - userID: string
  - blogID: string

Returns:
  - bool: true for blog owners
  - error: Database failures
*/
func (service *Service) IsOwner(context context.Context, userID, blogID string) (bool, error) {
	if userID == "" || blogID == "" {
		return false, nil
	}

	member, err := service.repo.FindMember(context, blogID, userID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if !member.Role.Valid() {
		service.logger.WarnContext(context, "blog_member_unknown_role",
			slog.String("blog_id", blogID),
			slog.String("user_id", userID),
			slog.String("role", string(member.Role)),
		)
		return false, nil
	}

	return member.Role.AtLeast(sec.RoleOwner), nil
}
