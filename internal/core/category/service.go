// Copyright (c) 2026 Caboomlog. All rights reserved.

package category

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/caboomlog/backend/internal/platform/apperr"
	"github.com/caboomlog/backend/internal/platform/dberr"
	"github.com/caboomlog/backend/internal/platform/validate"
	"github.com/caboomlog/backend/pkg/slug"
	"github.com/caboomlog/backend/pkg/uuid"
)

// # Service Layer

// Service enforces the hierarchy rules on top of a [Repository].
type Service struct {
	repo     Repository
	topics   TopicLookup
	recorder Recorder
	logger   *slog.Logger
}

// NewService constructs a category [Service]. A nil recorder disables metrics.
func NewService(repo Repository, topics TopicLookup, recorder Recorder, logger *slog.Logger) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		repo:     repo,
		topics:   topics,
		recorder: recorder,
		logger:   logger,
	}
}

// # Creation

/*
CreateCategory validates and persists a new category.

Checks run in a fixed order and the first failure wins:
topic existence, the per-blog cap, the name, then the parent rules
(existence, same blog, depth, visibility). Any topic ID the catalog does not
know, zero and negative IDs included, is ErrTopicNotFound.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Category: The stored category with depth and order assigned
  - error: One of the domain errors, a validation error or a store failure
*/
func (service *Service) CreateCategory(context context.Context, input CreateInput) (*Category, error) {
	// Step 1: Topic
	exists, err := service.topics.Exists(context, input.TopicID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, service.reject(ErrTopicNotFound)
	}

	// Step 2: Capacity
	count, err := service.repo.CountByBlog(context, input.BlogID)
	if err != nil {
		return nil, err
	}
	if err := checkCapacity(count); err != nil {
		return nil, service.reject(err)
	}

	// Step 3: Name
	input.Name = strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, MaxNameLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Step 4: Placement
	var place placement
	var parentID *string
	if input.ParentID != nil {
		parent, err := service.repo.FindByID(context, *input.ParentID)
		if err != nil {
			return nil, service.reject(notFoundAs(err, ErrParentCategoryNotFound))
		}

		if err := checkParent(parent, input.BlogID, input.IsPublic); err != nil {
			return nil, service.reject(err)
		}

		siblings, err := service.repo.CountChildren(context, input.BlogID, &parent.ID)
		if err != nil {
			return nil, err
		}
		place = placeChild(parent, siblings)
		parentID = &parent.ID
	} else {
		roots, err := service.repo.CountChildren(context, input.BlogID, nil)
		if err != nil {
			return nil, err
		}
		place = placeRoot(roots)
	}

	// Step 5: Persist
	category := &Category{
		ID:       uuid.New(),
		BlogID:   input.BlogID,
		ParentID: parentID,
		TopicID:  input.TopicID,
		Name:     input.Name,
		IsPublic: input.IsPublic,
		Depth:    place.depth,
		Order:    place.order,
	}
	category.Slug = slug.FromOr(category.Name, category.ID[:8])

	if err := service.repo.Create(context, category); err != nil {
		return nil, err
	}

	service.recorder.CategoryCreated()
	service.logger.InfoContext(context, "category_created",
		slog.String("blog_id", category.BlogID),
		slog.String("category_id", category.ID),
		slog.Int("depth", category.Depth),
		slog.Int("order", category.Order),
		slog.Bool("is_public", category.IsPublic),
	)

	return category, nil
}

// # Read Paths

// ListTree returns the owner's view of a blog: every category, as a forest.
func (service *Service) ListTree(context context.Context, blogID string) ([]*Node, error) {
	categories, err := service.repo.ListByBlog(context, blogID)
	if err != nil {
		return nil, err
	}
	return BuildTree(categories), nil
}

// ListPublicTree returns the visitor's view of a blog: public categories reachable
// from public roots.
func (service *Service) ListPublicTree(context context.Context, blogID string) ([]*Node, error) {
	categories, err := service.repo.ListPublicByBlog(context, blogID)
	if err != nil {
		return nil, err
	}
	return BuildTree(categories), nil
}

// # Visibility

/*
ChangeVisibility sets the visibility of a category.

Publishing changes only the target, so private descendants stay private. Hiding
changes the target and its whole subtree in one transaction.

Parameters:
  - context: context.Context
  - blogID: string (Blog fid from the route)
  - categoryID: string
  - makePublic: bool

Returns:
  - *VisibilityResult: IDs of every category that changed
  - error: ErrCategoryNotFound, ErrCategoryNotOwnedByBlog or store failures
*/
func (service *Service) ChangeVisibility(context context.Context, blogID, categoryID string, makePublic bool) (*VisibilityResult, error) {
	target, err := service.resolve(context, blogID, categoryID)
	if err != nil {
		return nil, err
	}

	affected := []string{target.ID}
	if !makePublic {
		categories, err := service.repo.ListByBlog(context, blogID)
		if err != nil {
			return nil, err
		}
		affected = collectSubtree(categories, target.ID)
	}

	if _, err := service.repo.SetVisibility(context, blogID, affected, makePublic); err != nil {
		return nil, err
	}

	service.recorder.VisibilityChanged(makePublic, len(affected))
	service.logger.InfoContext(context, "category_visibility_changed",
		slog.String("blog_id", blogID),
		slog.String("category_id", target.ID),
		slog.Bool("is_public", makePublic),
		slog.Int("affected", len(affected)),
	)

	return &VisibilityResult{
		CategoryID:  target.ID,
		IsPublic:    makePublic,
		AffectedIDs: affected,
	}, nil
}

// # Ordering

/*
SwitchOrder exchanges the sibling order of two categories at the same depth.

Parameters:
  - context: context.Context
  - blogID: string
  - firstID, secondID: string (Must differ)

Returns:
  - error: ErrCategoryNotFound, ErrCategoryNotOwnedByBlog, ErrOrderSwapDepthMismatch
*/
func (service *Service) SwitchOrder(context context.Context, blogID, firstID, secondID string) error {
	validator := &validate.Validator{}
	validator.Required(FieldCategoryID1, firstID).
		Required(FieldCategoryID2, secondID).
		Custom(FieldCategoryID2, firstID == secondID, "Must differ from category_id_1")
	if err := validator.Err(); err != nil {
		return err
	}

	first, err := service.resolve(context, blogID, firstID)
	if err != nil {
		return err
	}

	second, err := service.resolve(context, blogID, secondID)
	if err != nil {
		return err
	}

	if err := checkSwap(first, second); err != nil {
		return service.reject(err)
	}

	if err := service.repo.SwapOrder(context, blogID, first.ID, second.ID); err != nil {
		return err
	}

	service.recorder.OrderSwapped()
	service.logger.InfoContext(context, "category_order_switched",
		slog.String("blog_id", blogID),
		slog.String("category_id_1", first.ID),
		slog.String("category_id_2", second.ID),
	)

	return nil
}

// # Helpers

// resolve loads a category and checks that it belongs to blogID.
func (service *Service) resolve(context context.Context, blogID, categoryID string) (*Category, error) {
	category, err := service.repo.FindByID(context, categoryID)
	if err != nil {
		return nil, service.reject(notFoundAs(err, ErrCategoryNotFound))
	}

	if category.BlogID != blogID {
		return nil, service.reject(ErrCategoryNotOwnedByBlog)
	}

	return category, nil
}

// reject records domain rule violations before returning err unchanged.
func (service *Service) reject(err error) error {
	if appErr := apperr.As(err); appErr != nil && appErr.HTTPStatus < 500 {
		service.recorder.RuleViolated(appErr.Code)
	}
	return err
}

// notFoundAs substitutes target for the store's generic not-found error.
func notFoundAs(err error, target error) error {
	if errors.Is(err, dberr.ErrNotFound) {
		return target
	}
	return err
}
