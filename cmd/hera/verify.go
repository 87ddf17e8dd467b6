package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/hera-migrate/internal/cli"
	"github.com/Veraticus/hera-migrate/internal/migrate"
	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Report row counts and aggregate statistics",
		Long: `Verify reads the migrated database and prints per-table row counts plus
the aggregate statistics the dashboard derives: budget progress, family
approval rate, packing progress, and itinerary completion.

It never writes anything.`,
		RunE: runVerify,
	}
}

func runVerify(cmd *cobra.Command, _ []string) error {
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

	var sb strings.Builder
	sb.WriteString(cli.TitleStyle.Render("Record counts"))
	sb.WriteString("\n")
	total := 0
	for _, domain := range migrate.Domains {
		sb.WriteString(fmt.Sprintf("  %-10s %d\n", domain, counts[domain]))
		total += counts[domain]
	}
	sb.WriteString(cli.BoldStyle.Render(fmt.Sprintf("  %-10s %d", "total", total)))
	sb.WriteString("\n\n")

	budget, err := store.BudgetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute budget stats: %w", err)
	}
	sb.WriteString(cli.TitleStyle.Render("Budget"))
	sb.WriteString(fmt.Sprintf("\n  target $%.2f, saved $%.2f, remaining $%.2f (%.1f%% across %d items, %d complete)\n\n",
		budget.TotalAmount, budget.TotalSaved, budget.TotalRemaining,
		budget.ProgressPercentage, budget.ItemCount, budget.CompletedCount))

	family, err := store.FamilyStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute family stats: %w", err)
	}
	sb.WriteString(cli.TitleStyle.Render("Family approvals"))
	sb.WriteString(fmt.Sprintf("\n  %d members: %d approved, %d pending, %d not asked, %d declined (%.1f%% approval)\n\n",
		family.Total, family.Approved, family.Pending, family.NotAsked,
		family.Declined, family.ApprovalRate))

	packing, err := store.PackingStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute packing stats: %w", err)
	}
	sb.WriteString(cli.TitleStyle.Render("Packing"))
	sb.WriteString(fmt.Sprintf("\n  %d of %d items packed (%.1f%%), %d critical\n\n",
		packing.PackedItems, packing.TotalItems, packing.ProgressPercentage,
		packing.CriticalItems))

	itinerary, err := store.ItineraryStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute itinerary stats: %w", err)
	}
	sb.WriteString(cli.TitleStyle.Render("Itinerary"))
	sb.WriteString(fmt.Sprintf("\n  %d activities, %d completed (%.1f%%), %d proposal(s)\n",
		itinerary.TotalActivities, itinerary.Completed, itinerary.CompletionRate,
		itinerary.Proposals))

	fmt.Print(sb.String())
	return nil
}
