// Copyright (c) 2026 Caboomlog. All rights reserved.

package topic

import "context"

// Repository defines the data access contract for the topic catalog.
type Repository interface {
	// ListTopics returns root topics ordered by sort order, each with its sub-topics.
	ListTopics(context context.Context) ([]*Topic, error)

	// Exists reports whether a topic with the given ID is in the catalog.
	Exists(context context.Context, id int) (bool, error)
}

// CacheRecorder receives cache hit and miss events. Implemented by the metrics collector.
type CacheRecorder interface {
	CacheHit()
	CacheMiss()
}

type nopCacheRecorder struct{}

func (nopCacheRecorder) CacheHit() {}

func (nopCacheRecorder) CacheMiss() {}
