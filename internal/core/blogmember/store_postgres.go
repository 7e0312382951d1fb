// Copyright (c) 2026 Caboomlog. All rights reserved.

package blogmember

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caboomlog/backend/internal/platform/database/schema"
	"github.com/caboomlog/backend/internal/platform/dberr"
)

var memberTable = schema.BlogMemberMapping

// PostgresRepository implements [Repository] over blog.membermapping.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL-backed membership repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindMember(context context.Context, blogID, userID string) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 AND %s = $2`,
		memberTable.BlogFID, memberTable.UserID, memberTable.Role, memberTable.CreatedAt,
		memberTable.Table, memberTable.BlogFID, memberTable.UserID)

	member := &Member{}
	err := repository.db.QueryRow(context, query, blogID, userID).Scan(
		&member.BlogID, &member.UserID, &member.Role, &member.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_blog_member")
	}
	return member, nil
}
