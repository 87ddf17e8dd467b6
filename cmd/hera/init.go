package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/hera-migrate/internal/storage"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or upgrade the database schema",
		Long: `Initialize or update the database schema to the latest version.

This command ensures the database has all the tables and indexes the
dashboard expects before any data is imported.`,
		RunE: runInit,
	}

	cmd.Flags().Bool("status", false, "Show current schema status without applying changes")

	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")
	ctx := cmd.Context()

	dbPath, err := databasePath()
	if err != nil {
		return err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if status {
		current, err := store.SchemaVersion(ctx)
		if err != nil {
			return err
		}
		slog.Info("📊 Database schema status",
			"database", dbPath,
			"current_version", current,
			"latest_version", storage.ExpectedSchemaVersion)
		return nil
	}

	slog.Info("🗄️  Running database migrations...", "database", dbPath)

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("✅ Database schema is up to date", "version", storage.ExpectedSchemaVersion)

	return nil
}
