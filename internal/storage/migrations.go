package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS users (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					username TEXT UNIQUE NOT NULL,
					password_hash TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS budgets (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					category TEXT NOT NULL,
					amount REAL NOT NULL DEFAULT 0,
					saved REAL NOT NULL DEFAULT 0,
					status TEXT DEFAULT 'Outstanding',
					notes TEXT,
					priority TEXT DEFAULT 'Medium',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_budgets_category ON budgets(category)`,

				`CREATE TABLE IF NOT EXISTS family (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					relationship TEXT,
					status TEXT DEFAULT 'Pending',
					conversation_date DATE,
					reaction TEXT,
					notes TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_family_name ON family(name)`,

				`CREATE TABLE IF NOT EXISTS travel (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					type TEXT NOT NULL,
					provider TEXT,
					details TEXT,
					confirmation TEXT,
					date DATE,
					departure_time TIME,
					arrival_time TIME,
					cost REAL DEFAULT 0,
					status TEXT DEFAULT 'Pending',
					notes TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_travel_type ON travel(type)`,
				`CREATE INDEX idx_travel_date ON travel(date)`,

				`CREATE TABLE IF NOT EXISTS itinerary (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					day INTEGER NOT NULL,
					date DATE,
					time TIME,
					activity TEXT NOT NULL,
					location TEXT,
					completed BOOLEAN DEFAULT 0,
					is_proposal BOOLEAN DEFAULT 0,
					notes TEXT,
					priority TEXT DEFAULT 'Medium',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_itinerary_day ON itinerary(day)`,

				`CREATE TABLE IF NOT EXISTS packing (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					item TEXT NOT NULL,
					packed BOOLEAN DEFAULT 0,
					category TEXT,
					notes TEXT,
					quantity INTEGER DEFAULT 1,
					priority TEXT DEFAULT 'Medium',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_packing_category ON packing(category)`,

				`CREATE TABLE IF NOT EXISTS ring (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					jeweler TEXT,
					stone TEXT,
					metal TEXT,
					style_inspiration TEXT,
					insurance TEXT,
					status TEXT DEFAULT 'Researching',
					cost REAL DEFAULT 0,
					deposit_paid REAL DEFAULT 0,
					notes TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS files (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					filename TEXT NOT NULL,
					original_name TEXT NOT NULL,
					size TEXT,
					type TEXT,
					category TEXT,
					notes TEXT,
					mimetype TEXT,
					upload_path TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_files_category ON files(category)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add status and proposal indexes for dashboard queries",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE INDEX IF NOT EXISTS idx_family_status ON family(status)`,
				`CREATE INDEX IF NOT EXISTS idx_itinerary_proposal ON itinerary(is_proposal)`,
				`CREATE INDEX IF NOT EXISTS idx_packing_packed ON packing(packed)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query '%s': %w", query, err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	// Get current version
	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	// Apply migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		// Update version
		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	// Verify we're at the expected schema version
	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}

// SchemaVersion reports the database's current schema version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
