// Copyright (c) 2026 Caboomlog. All rights reserved.

package topic

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caboomlog/backend/internal/platform/database/schema"
	"github.com/caboomlog/backend/internal/platform/dberr"
)

var topicTable = schema.BlogTopic

// PostgresRepository implements [Repository] over blog.topic.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL-backed topic repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
ListTopics loads the catalog with one query per level and groups sub-topics under
their roots in memory.

Returns:
  - []*Topic: Root topics, never nil
  - error: Database failures
*/
func (repository *PostgresRepository) ListTopics(context context.Context) ([]*Topic, error) {
	rootQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s IS NULL ORDER BY %s ASC, %s ASC`,
		topicTable.ID, topicTable.Name, topicTable.SortOrder,
		topicTable.Table, topicTable.ParentID, topicTable.SortOrder, topicTable.ID)
	subQuery := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s IS NOT NULL ORDER BY %s ASC, %s ASC`,
		topicTable.ID, topicTable.ParentID, topicTable.Name, topicTable.SortOrder,
		topicTable.Table, topicTable.ParentID, topicTable.SortOrder, topicTable.ID)

	rootRows, err := repository.db.Query(context, rootQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_root_topics")
	}
	defer rootRows.Close()

	roots := make([]*Topic, 0)
	byID := make(map[int]*Topic)

	for rootRows.Next() {
		root := &Topic{SubTopics: make([]Topic, 0)}
		if err := rootRows.Scan(&root.ID, &root.Name, &root.SortOrder); err != nil {
			return nil, dberr.Wrap(err, "scan_root_topic")
		}
		roots = append(roots, root)
		byID[root.ID] = root
	}
	if err := rootRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_root_topics")
	}
	rootRows.Close()

	subRows, err := repository.db.Query(context, subQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sub_topics")
	}
	defer subRows.Close()

	for subRows.Next() {
		var parentID int
		sub := Topic{}
		if err := subRows.Scan(&sub.ID, &parentID, &sub.Name, &sub.SortOrder); err != nil {
			return nil, dberr.Wrap(err, "scan_sub_topic")
		}

		// Topics nested below the second level are not part of the catalog.
		if root, ok := byID[parentID]; ok {
			root.SubTopics = append(root.SubTopics, sub)
		}
	}
	if err := subRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_sub_topics")
	}

	return roots, nil
}

// Exists reports whether a topic row with the given ID exists.
func (repository *PostgresRepository) Exists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, topicTable.Table, topicTable.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "topic_exists")
	}
	return exists, nil
}
