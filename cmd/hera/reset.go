package main

import (
	"fmt"
	"os"

	"github.com/Veraticus/hera-migrate/internal/cli"
	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all migrated data and rebuild the schema",
		Long: `Reset drops every table, including the dashboard login, and rebuilds an
empty schema at the latest version.

This is a destructive operation. Use it before re-importing an export
from scratch.`,
		RunE: runReset,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runReset(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	counts, err := store.RecordCounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}
	total := 0
	for _, count := range counts {
		total += count
	}

	if total == 0 {
		fmt.Println("No records found. Nothing to reset.")
		return nil
	}

	if !force {
		fmt.Printf("This will delete %d records across %d tables, plus the dashboard login.\n", total, len(counts))
		ok, err := cli.Confirm(ctx, os.Stdin, os.Stdout, "Are you sure you want to continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset canceled.")
			return nil
		}
	}

	if err := store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}

	fmt.Printf("✅ Deleted %d records and rebuilt an empty schema.\n", total)
	return nil
}
