// Copyright (c) 2026 Caboomlog. All rights reserved.

package topic_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caboomlog/backend/internal/core/topic"
)

func TestPostgresRepository_SeededCatalog(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := topic.NewPostgresRepository(pool)
	ctx := context.Background()

	roots, err := repo.ListTopics(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 4)
	assert.Equal(t, "Life", roots[0].Name)
	assert.Len(t, roots[0].SubTopics, 3)
	assert.Equal(t, 11, roots[0].SubTopics[0].ID)

	exists, err := repo.Exists(ctx, 32)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}
