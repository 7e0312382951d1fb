// Copyright (c) 2026 Caboomlog. All rights reserved.

// Package dberr translates pgx errors into [apperr.AppError] values.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caboomlog/backend/internal/platform/apperr"
)

// foreignKeyViolation is the SQLSTATE raised when a referenced row does not exist.
const foreignKeyViolation = "23503"

var (
	// ErrNotFound is returned when a queried row doesn't exist.
	// Services compare against it with [errors.Is] and substitute their own typed error.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrReferenceMissing is returned when an insert points at a row that does not exist.
	ErrReferenceMissing = apperr.BadRequest("Referenced resource does not exist")
)

// Wrap classifies a database error. The action names the failing step and is kept in
// the cause chain for server-side logs only.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return ErrReferenceMissing
	}

	return apperr.Internal(&actionError{action: action, err: err})
}

// actionError decorates a driver error with the repository step that produced it.
type actionError struct {
	action string
	err    error
}

func (e *actionError) Error() string { return e.action + ": " + e.err.Error() }

func (e *actionError) Unwrap() error { return e.err }
