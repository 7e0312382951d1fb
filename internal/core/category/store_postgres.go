// Copyright (c) 2026 Caboomlog. All rights reserved.

package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caboomlog/backend/internal/platform/database/schema"
	"github.com/caboomlog/backend/internal/platform/dberr"
	"github.com/caboomlog/backend/pkg/uuid"
)

// PostgresRepository implements [Repository] on the blog.category table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	categoryTable = schema.BlogCategory
	topicTable    = schema.BlogTopic
)

// selectColumns reads a category joined with its topic name. Aliases: c = category, t = topic.
var selectColumns = fmt.Sprintf(`
	SELECT c.%s, c.%s, c.%s, c.%s, t.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s
	FROM %s c
	JOIN %s t ON t.%s = c.%s`,
	categoryTable.ID, categoryTable.BlogFID, categoryTable.ParentID, categoryTable.TopicID, topicTable.Name, categoryTable.Name, categoryTable.Slug,
	categoryTable.IsPublic, categoryTable.SortOrder, categoryTable.Depth, categoryTable.CreatedAt, categoryTable.UpdatedAt,
	categoryTable.Table, topicTable.Table, topicTable.ID, categoryTable.TopicID,
)

func scanCategory(row pgx.Row) (*Category, error) {
	category := &Category{}
	err := row.Scan(
		&category.ID, &category.BlogID, &category.ParentID, &category.TopicID, &category.TopicName,
		&category.Name, &category.Slug, &category.IsPublic, &category.Order, &category.Depth,
		&category.CreatedAt, &category.UpdatedAt,
	)
	return category, err
}

// # Lookups

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Category, error) {
	// A malformed ID cannot match any row.
	if !uuid.Valid(id) {
		return nil, dberr.ErrNotFound
	}

	query := selectColumns + fmt.Sprintf(` WHERE c.%s = $1`, categoryTable.ID)

	category, err := scanCategory(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_category")
	}

	return category, nil
}

func (repository *PostgresRepository) ListByBlog(context context.Context, blogID string) ([]*Category, error) {
	query := selectColumns + fmt.Sprintf(` WHERE c.%s = $1 ORDER BY c.%s ASC, c.%s ASC`,
		categoryTable.BlogFID, categoryTable.SortOrder, categoryTable.CreatedAt)

	return repository.list(context, "list_categories", query, blogID)
}

func (repository *PostgresRepository) ListPublicByBlog(context context.Context, blogID string) ([]*Category, error) {
	query := selectColumns + fmt.Sprintf(` WHERE c.%s = $1 AND c.%s ORDER BY c.%s ASC, c.%s ASC`,
		categoryTable.BlogFID, categoryTable.IsPublic, categoryTable.SortOrder, categoryTable.CreatedAt)

	return repository.list(context, "list_public_categories", query, blogID)
}

func (repository *PostgresRepository) list(context context.Context, action, query string, args ...any) ([]*Category, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return categories, nil
}

// # Counters

func (repository *PostgresRepository) CountByBlog(context context.Context, blogID string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, categoryTable.Table, categoryTable.BlogFID)

	var count int
	if err := repository.db.QueryRow(context, query, blogID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_categories")
	}

	return count, nil
}

func (repository *PostgresRepository) CountChildren(context context.Context, blogID string, parentID *string) (int, error) {
	// IS NOT DISTINCT FROM matches NULL = NULL, so a nil parent counts the roots.
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1 AND %s IS NOT DISTINCT FROM $2::uuid`,
		categoryTable.Table, categoryTable.BlogFID, categoryTable.ParentID)

	var count int
	if err := repository.db.QueryRow(context, query, blogID, parentID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_child_categories")
	}

	return count, nil
}

// # Mutations

func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s, (SELECT %s FROM %s WHERE %s = $4)
	`,
		categoryTable.Table,
		categoryTable.ID, categoryTable.BlogFID, categoryTable.ParentID, categoryTable.TopicID, categoryTable.Name, categoryTable.Slug,
		categoryTable.IsPublic, categoryTable.SortOrder, categoryTable.Depth, categoryTable.CreatedAt, categoryTable.UpdatedAt,
		categoryTable.CreatedAt, categoryTable.UpdatedAt, topicTable.Name, topicTable.Table, topicTable.ID,
	)

	err := repository.db.QueryRow(context, query,
		category.ID, category.BlogID, category.ParentID, category.TopicID, category.Name, category.Slug,
		category.IsPublic, category.Order, category.Depth,
	).Scan(&category.CreatedAt, &category.UpdatedAt, &category.TopicName)
	if err != nil {
		return dberr.Wrap(err, "insert_category")
	}

	return nil
}

func (repository *PostgresRepository) SetVisibility(context context.Context, blogID string, ids []string, public bool) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_visibility_tx")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = NOW()
		WHERE %s = $2 AND %s = ANY($3::uuid[])
	`, categoryTable.Table, categoryTable.IsPublic, categoryTable.UpdatedAt, categoryTable.BlogFID, categoryTable.ID)

	result, err := transaction.Exec(context, query, public, blogID, ids)
	if err != nil {
		return 0, dberr.Wrap(err, "update_category_visibility")
	}

	// A short count means part of the subtree is missing; keep the old state.
	if updated := int(result.RowsAffected()); updated != len(ids) {
		return 0, dberr.Wrap(fmt.Errorf("updated %d of %d categories", updated, len(ids)), "update_category_visibility")
	}

	if err := transaction.Commit(context); err != nil {
		return 0, dberr.Wrap(err, "commit_visibility_tx")
	}

	return len(ids), nil
}

func (repository *PostgresRepository) SwapOrder(context context.Context, blogID, firstID, secondID string) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_swap_tx")
	}
	defer transaction.Rollback(context)

	// Step 1: Lock both rows and read their current order
	lockQuery := fmt.Sprintf(`
		SELECT %s, %s FROM %s
		WHERE %s = $1 AND %s IN ($2, $3)
		FOR UPDATE
	`, categoryTable.ID, categoryTable.SortOrder, categoryTable.Table, categoryTable.BlogFID, categoryTable.ID)

	rows, err := transaction.Query(context, lockQuery, blogID, firstID, secondID)
	if err != nil {
		return dberr.Wrap(err, "lock_swap_categories")
	}

	orders := make(map[string]int, 2)
	for rows.Next() {
		var id string
		var order int
		if err := rows.Scan(&id, &order); err != nil {
			rows.Close()
			return dberr.Wrap(err, "scan_swap_category")
		}
		orders[id] = order
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return dberr.Wrap(err, "lock_swap_categories")
	}

	firstOrder, firstFound := orders[firstID]
	secondOrder, secondFound := orders[secondID]
	if !firstFound || !secondFound {
		return dberr.ErrNotFound
	}

	// Step 2: Write the exchanged values
	updateQuery := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2`,
		categoryTable.Table, categoryTable.SortOrder, categoryTable.UpdatedAt, categoryTable.ID)

	if _, err := transaction.Exec(context, updateQuery, secondOrder, firstID); err != nil {
		return dberr.Wrap(err, "update_first_order")
	}
	if _, err := transaction.Exec(context, updateQuery, firstOrder, secondID); err != nil {
		return dberr.Wrap(err, "update_second_order")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_swap_tx")
	}
	return nil
}
