package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/hera-migrate/internal/cli"
	"github.com/Veraticus/hera-migrate/internal/common"
	"github.com/Veraticus/hera-migrate/internal/migrate"
	"github.com/Veraticus/hera-migrate/internal/source"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Migrate a dashboard JSON export into the database",
		Long: `Import reads a dashboard JSON export and writes every domain into the
database in a single transaction: budget, family, travel, itinerary,
packing, ring, and files.

Records that cannot be migrated are reported and skipped; they never
abort the run. Re-importing appends, so use --reset for a clean re-run.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Show per-domain counts without writing anything")
	cmd.Flags().Bool("reset", false, "Drop and recreate the schema before importing")
	cmd.Flags().BoolP("force", "f", false, "Skip the --reset confirmation prompt")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	reset, _ := cmd.Flags().GetBool("reset")
	force, _ := cmd.Flags().GetBool("force")
	ctx := cmd.Context()

	doc, err := source.Load(args[0])
	if err != nil {
		if errors.Is(err, common.ErrDocumentNotFound) {
			return common.NewUserError(fmt.Sprintf("No export found at %s", args[0]), err)
		}
		return err
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if reset && !dryRun {
		if !force {
			ok, err := cli.Confirm(ctx, os.Stdin, os.Stdout,
				"This will delete every record in the database before importing. Continue?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Import canceled.")
				return nil
			}
		}
		if err := store.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}
	}

	config := migrate.Config{
		AdminUsername:     viper.GetString("migration.admin_username"),
		AdminPassword:     viper.GetString("migration.admin_password"),
		ErrorDisplayLimit: viper.GetInt("migration.error_display_limit"),
	}

	var bar *progressbar.ProgressBar
	lastDomain := ""
	config.Progress = func(domain string, done, total int) {
		if domain != lastDomain {
			lastDomain = domain
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription(fmt.Sprintf("Building %s records", domain)),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	}

	migrator, err := migrate.New(store, config)
	if err != nil {
		return err
	}

	if dryRun {
		result, err := migrator.DryRun(doc)
		if err != nil {
			return err
		}
		slog.Info("🔍 Dry run, nothing written", "sections", doc.Sections())
		fmt.Print(result.Render(config.ErrorDisplayLimit))
		return nil
	}

	result, err := migrator.Run(ctx, doc)
	if err != nil {
		return err
	}

	fmt.Print(result.Render(config.ErrorDisplayLimit))
	return nil
}
