// Copyright (c) 2026 Caboomlog. All rights reserved.

package category_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/caboomlog/backend/internal/core/category"
	"github.com/caboomlog/backend/internal/platform/dberr"
	"github.com/caboomlog/backend/pkg/pointer"
)

// # In-memory Repository

// memoryRepository is an arena of categories keyed by ID.
type memoryRepository struct {
	mu       sync.Mutex
	rows     map[string]*category.Category
	inserted []string
	topics   map[int]string

	setVisibilityErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		rows:   make(map[string]*category.Category),
		topics: map[int]string{1: "Life", 2: "Travel", 3: "Tech"},
	}
}

func clone(c *category.Category) *category.Category {
	copied := *c
	if c.ParentID != nil {
		copied.ParentID = pointer.To(*c.ParentID)
	}
	return &copied
}

func (repo *memoryRepository) FindByID(_ context.Context, id string) (*category.Category, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	// UUIDs compare case-insensitively, as they do in PostgreSQL.
	row, found := repo.rows[strings.ToLower(id)]
	if !found {
		return nil, dberr.ErrNotFound
	}
	return clone(row), nil
}

func (repo *memoryRepository) list(blogID string, publicOnly bool) []*category.Category {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	result := make([]*category.Category, 0)
	for _, id := range repo.inserted {
		row := repo.rows[id]
		if row.BlogID != blogID || (publicOnly && !row.IsPublic) {
			continue
		}
		result = append(result, clone(row))
	}

	slices.SortStableFunc(result, func(a, b *category.Category) int {
		return a.Order - b.Order
	})
	return result
}

func (repo *memoryRepository) ListByBlog(_ context.Context, blogID string) ([]*category.Category, error) {
	return repo.list(blogID, false), nil
}

func (repo *memoryRepository) ListPublicByBlog(_ context.Context, blogID string) ([]*category.Category, error) {
	return repo.list(blogID, true), nil
}

func (repo *memoryRepository) CountByBlog(_ context.Context, blogID string) (int, error) {
	return len(repo.list(blogID, false)), nil
}

func (repo *memoryRepository) CountChildren(_ context.Context, blogID string, parentID *string) (int, error) {
	count := 0
	for _, row := range repo.list(blogID, false) {
		if pointer.Equal(row.ParentID, parentID) {
			count++
		}
	}
	return count, nil
}

func (repo *memoryRepository) Create(_ context.Context, c *category.Category) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	name, found := repo.topics[c.TopicID]
	if !found {
		return dberr.ErrReferenceMissing
	}

	c.TopicName = name
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt

	repo.rows[c.ID] = clone(c)
	repo.inserted = append(repo.inserted, c.ID)
	return nil
}

func (repo *memoryRepository) SetVisibility(_ context.Context, blogID string, ids []string, public bool) (int, error) {
	if repo.setVisibilityErr != nil {
		return 0, repo.setVisibilityErr
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	// All or nothing.
	for _, id := range ids {
		if row, found := repo.rows[id]; !found || row.BlogID != blogID {
			return 0, errors.New("visibility update incomplete")
		}
	}
	for _, id := range ids {
		repo.rows[id].IsPublic = public
	}
	return len(ids), nil
}

func (repo *memoryRepository) SwapOrder(_ context.Context, blogID, firstID, secondID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	first, firstFound := repo.rows[firstID]
	second, secondFound := repo.rows[secondID]
	if !firstFound || !secondFound || first.BlogID != blogID || second.BlogID != blogID {
		return dberr.ErrNotFound
	}

	first.Order, second.Order = second.Order, first.Order
	return nil
}

// put stores a category directly, bypassing the rules.
func (repo *memoryRepository) put(c *category.Category) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.rows[c.ID] = clone(c)
	repo.inserted = append(repo.inserted, c.ID)
}

// visibility returns the stored visibility of every category of a blog.
func (repo *memoryRepository) visibility(blogID string) map[string]bool {
	result := make(map[string]bool)
	for _, row := range repo.list(blogID, false) {
		result[row.ID] = row.IsPublic
	}
	return result
}

// # Collaborator Fakes

type topicSet map[int]bool

func (topics topicSet) Exists(_ context.Context, topicID int) (bool, error) {
	return topics[topicID], nil
}

type countingRecorder struct {
	created    int
	visibility int
	swaps      int
	violations []string
}

func (r *countingRecorder) CategoryCreated() { r.created++ }

func (r *countingRecorder) VisibilityChanged(bool, int) { r.visibility++ }

func (r *countingRecorder) OrderSwapped() { r.swaps++ }

func (r *countingRecorder) RuleViolated(code string) { r.violations = append(r.violations, code) }

// # Fixture

type fixture struct {
	service  *category.Service
	repo     *memoryRepository
	recorder *countingRecorder
}

func newFixture() *fixture {
	repo := newMemoryRepository()
	recorder := &countingRecorder{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		service:  category.NewService(repo, topicSet{1: true, 2: true, 3: true}, recorder, logger),
		repo:     repo,
		recorder: recorder,
	}
}

// create builds a category through the service and fails the test on error.
func (f *fixture) create(t *testing.T, blogID string, parent *category.Category, name string, public bool) *category.Category {
	t.Helper()

	input := category.CreateInput{BlogID: blogID, TopicID: 1, Name: name, IsPublic: public}
	if parent != nil {
		input.ParentID = pointer.To(parent.ID)
	}

	created, err := f.service.CreateCategory(context.Background(), input)
	require.NoError(t, err)
	return created
}

// chain creates a path of public categories from depth 1 down to depth n.
func (f *fixture) chain(t *testing.T, blogID string, n int) []*category.Category {
	t.Helper()

	path := make([]*category.Category, 0, n)
	var parent *category.Category
	for i := 0; i < n; i++ {
		parent = f.create(t, blogID, parent, "Level", true)
		path = append(path, parent)
	}
	return path
}
