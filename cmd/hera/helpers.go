package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/hera-migrate/internal/config"
	"github.com/Veraticus/hera-migrate/internal/storage"
	"github.com/spf13/viper"
)

// databasePath resolves the configured database location, falling back
// to the default under the user's data directory.
func databasePath() (string, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		def, err := config.DefaultDatabasePath()
		if err != nil {
			return "", fmt.Errorf("failed to resolve database path: %w", err)
		}
		dbPath = def
	}
	return config.ExpandPath(dbPath), nil
}

// openStorage opens the configured database and brings its schema up to
// date.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}
