// Copyright (c) 2026 Caboomlog. All rights reserved.

package category_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caboomlog/backend/internal/core/category"
	"github.com/caboomlog/backend/internal/platform/apperr"
	"github.com/caboomlog/backend/internal/platform/dberr"
	"github.com/caboomlog/backend/pkg/pointer"
	"github.com/caboomlog/backend/pkg/uuid"
)

// openTestPool connects to TEST_DATABASE_URL, a migrated database, or skips the test.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestPostgresRepository_Lifecycle(t *testing.T) {
	pool := openTestPool(t)
	repo := category.NewPostgresRepository(pool)
	ctx := context.Background()
	blogID := "test-" + uuid.New()[:8]

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM blog.category WHERE blogfid = $1 AND parentid IS NOT NULL AND depth = 2`, blogID)
		_, _ = pool.Exec(context.Background(), `DELETE FROM blog.category WHERE blogfid = $1`, blogID)
	})

	root := &category.Category{ID: uuid.New(), BlogID: blogID, TopicID: 1, Name: "Travel", Slug: "travel", IsPublic: true, Order: 1, Depth: 1}
	require.NoError(t, repo.Create(ctx, root))
	assert.Equal(t, "Life", root.TopicName)
	assert.False(t, root.CreatedAt.IsZero())

	child := &category.Category{ID: uuid.New(), BlogID: blogID, ParentID: pointer.To(root.ID), TopicID: 2, Name: "Japan", Slug: "japan", IsPublic: true, Order: 1, Depth: 2}
	require.NoError(t, repo.Create(ctx, child))

	found, err := repo.FindByID(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, root.ID, pointer.Val(found.ParentID))

	_, err = repo.FindByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	roots, err := repo.CountChildren(ctx, blogID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, roots)

	children, err := repo.CountChildren(ctx, blogID, &root.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, children)

	updated, err := repo.SetVisibility(ctx, blogID, []string{root.ID, child.ID}, false)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	public, err := repo.ListPublicByBlog(ctx, blogID)
	require.NoError(t, err)
	assert.Empty(t, public)

	// A foreign ID makes the whole batch fail.
	_, err = repo.SetVisibility(ctx, blogID, []string{root.ID, uuid.New()}, true)
	assert.Error(t, err)
	stillPrivate, err := repo.FindByID(ctx, root.ID)
	require.NoError(t, err)
	assert.False(t, stillPrivate.IsPublic)

	second := &category.Category{ID: uuid.New(), BlogID: blogID, TopicID: 1, Name: "Food", Slug: "food", IsPublic: true, Order: 2, Depth: 1}
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.SwapOrder(ctx, blogID, root.ID, second.ID))

	all, err := repo.ListByBlog(ctx, blogID)
	require.NoError(t, err)
	require.Len(t, all, 3)

	forest := category.BuildTree(all)
	require.Len(t, forest, 2)
	assert.Equal(t, second.ID, forest[0].ID)

	count, err := repo.CountByBlog(ctx, blogID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

/*
TestPostgresRepository_SwapOrderErrorsAreClassified verifies that transactional failures
of the swap surface as internal AppErrors rather than raw driver errors.
*/
func TestPostgresRepository_SwapOrderErrorsAreClassified(t *testing.T) {
	pool := openTestPool(t)
	repo := category.NewPostgresRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.SwapOrder(ctx, "test-blog", uuid.New(), uuid.New())
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
}
