// Copyright (c) 2026 Caboomlog. All rights reserved.

// Package migration applies the SQL migrations in data/migrations at startup using
// golang-migrate.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers the "pgx5" scheme.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunUp applies all pending UP migrations. A dirty schema aborts startup.
//
// # Parameters
//   - dsn: A postgres:// or postgresql:// URL.
//   - migrationsPath: Filesystem path to the migrations directory.
//   - logger: Structured logger for migration events.
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+migrationsPath, toPgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		sourceError, dbError := migrator.Close()
		if sourceError != nil {
			logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
		}
		if dbError != nil {
			logger.Error("migration_db_close_failed", slog.Any("error", dbError))
		}
	}()

	migrator.Log = &migrateLogger{logger: logger}

	currentVersion, isDirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: failed to get current version: %w", err)
	}

	if isDirty {
		return fmt.Errorf("migration: database is dirty at version %d (manual intervention required)", currentVersion)
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_up_to_date", slog.Uint64("version", uint64(currentVersion)))
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	newVersion, _, _ := migrator.Version()
	logger.Info("migration_applied",
		slog.Uint64("from_version", uint64(currentVersion)),
		slog.Uint64("to_version", uint64(newVersion)),
	)

	return nil
}

// toPgx5DSN rewrites the scheme to the pgx5:// form golang-migrate expects.
func toPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, found := strings.CutPrefix(dsn, prefix); found {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger *slog.Logger
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug("migration_progress", slog.String("detail", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return false
}
