package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// Reset drops every table and rebuilds the schema from scratch. This is
// the supported precondition for a clean re-import; it is destructive
// and callers are expected to confirm with the user first.
func (s *SQLiteStorage) Reset(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tables := []string{"users"}
	for _, rt := range recordTables {
		tables = append(tables, rt.table)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "PRAGMA user_version = 0"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to reset schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}

	slog.Info("🔄 Database reset, rebuilding schema")
	return s.Migrate(ctx)
}
