// Copyright (c) 2026 Caboomlog. All rights reserved.

package topic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/caboomlog/backend/internal/platform/constants"
)

// CachedRepository keeps the whole catalog in Redis as one JSON document in front of
// another [Repository].
//
// Redis failures are logged and the call falls through to the wrapped repository.
type CachedRepository struct {
	next     Repository
	client   redis.UniversalClient
	ttl      time.Duration
	recorder CacheRecorder
	logger   *slog.Logger
}

// NewCachedRepository wraps next with a Redis catalog cache. A nil recorder disables metrics.
func NewCachedRepository(next Repository, client redis.UniversalClient, ttl time.Duration, recorder CacheRecorder, logger *slog.Logger) *CachedRepository {
	if recorder == nil {
		recorder = nopCacheRecorder{}
	}
	return &CachedRepository{
		next:     next,
		client:   client,
		ttl:      ttl,
		recorder: recorder,
		logger:   logger,
	}
}

/*
ListTopics serves the catalog from Redis, loading and storing it on a miss.

Parameters:
  - context: context.Context

Returns:
  - []*Topic: Root topics with their sub-topics
  - error: Failures of the wrapped repository only
*/
func (repository *CachedRepository) ListTopics(context context.Context) ([]*Topic, error) {
	catalog, err := repository.load(context)
	if err == nil {
		repository.recorder.CacheHit()
		return catalog, nil
	}
	if !errors.Is(err, redis.Nil) {
		repository.logger.Warn("topic_cache_read_failed", slog.Any("error", err))
	}
	repository.recorder.CacheMiss()

	catalog, err = repository.next.ListTopics(context)
	if err != nil {
		return nil, err
	}

	if err := repository.store(context, catalog); err != nil {
		repository.logger.Warn("topic_cache_write_failed", slog.Any("error", err))
	}
	return catalog, nil
}

// Exists answers from the cached catalog.
func (repository *CachedRepository) Exists(context context.Context, id int) (bool, error) {
	catalog, err := repository.ListTopics(context)
	if err != nil {
		return false, err
	}
	return contains(catalog, id), nil
}

// Invalidate drops the cached catalog so the next read reloads it.
func (repository *CachedRepository) Invalidate(context context.Context) error {
	if err := repository.client.Del(context, constants.RedisKeyTopicCatalog).Err(); err != nil {
		return fmt.Errorf("redis_topic_catalog_delete_failed: %w", err)
	}
	return nil
}

func (repository *CachedRepository) load(context context.Context) ([]*Topic, error) {
	raw, err := repository.client.Get(context, constants.RedisKeyTopicCatalog).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, err
		}
		return nil, fmt.Errorf("redis_topic_catalog_get_failed: %w", err)
	}

	var catalog []*Topic
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("redis_topic_catalog_decode_failed: %w", err)
	}
	return catalog, nil
}

func (repository *CachedRepository) store(context context.Context, catalog []*Topic) error {
	raw, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("redis_topic_catalog_encode_failed: %w", err)
	}
	if err := repository.client.Set(context, constants.RedisKeyTopicCatalog, raw, repository.ttl).Err(); err != nil {
		return fmt.Errorf("redis_topic_catalog_set_failed: %w", err)
	}
	return nil
}
