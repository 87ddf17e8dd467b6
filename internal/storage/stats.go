package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/hera-migrate/internal/model"
)

// BudgetStats aggregates savings progress across all budget rows.
// Remaining totals are computed at read time, never read from a column.
func (s *SQLiteStorage) BudgetStats(ctx context.Context) (*model.BudgetStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &model.BudgetStats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(amount), 0),
		       COALESCE(SUM(saved), 0),
		       COALESCE(SUM(MAX(0, amount - saved)), 0),
		       COALESCE(SUM(CASE WHEN saved >= amount THEN 1 ELSE 0 END), 0)
		FROM budgets
	`).Scan(&stats.ItemCount, &stats.TotalAmount, &stats.TotalSaved, &stats.TotalRemaining, &stats.CompletedCount)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate budget stats: %w", err)
	}

	if stats.TotalAmount > 0 {
		stats.ProgressPercentage = stats.TotalSaved / stats.TotalAmount * 100
	}
	return stats, nil
}

// FamilyStats aggregates the approval pipeline.
func (s *SQLiteStorage) FamilyStats(ctx context.Context) (*model.FamilyStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &model.FamilyStats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'Not Asked' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'Pending' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'Approved' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'Declined' THEN 1 ELSE 0 END), 0)
		FROM family
	`).Scan(&stats.Total, &stats.NotAsked, &stats.Pending, &stats.Approved, &stats.Declined)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate family stats: %w", err)
	}

	if stats.Total > 0 {
		stats.ApprovalRate = float64(stats.Approved) / float64(stats.Total) * 100
	}
	return stats, nil
}

// PackingStats aggregates packing progress. Ring-related items count as
// critical regardless of their stored priority.
func (s *SQLiteStorage) PackingStats(ctx context.Context) (*model.PackingStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &model.PackingStats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN packed THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN priority = 'Critical' OR LOWER(item) LIKE '%ring%' THEN 1 ELSE 0 END), 0)
		FROM packing
	`).Scan(&stats.TotalItems, &stats.PackedItems, &stats.CriticalItems)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate packing stats: %w", err)
	}

	stats.UnpackedItems = stats.TotalItems - stats.PackedItems
	if stats.TotalItems > 0 {
		stats.ProgressPercentage = float64(stats.PackedItems) / float64(stats.TotalItems) * 100
	}
	return stats, nil
}

// ItineraryStats aggregates itinerary completion.
func (s *SQLiteStorage) ItineraryStats(ctx context.Context) (*model.ItineraryStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	stats := &model.ItineraryStats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN is_proposal THEN 1 ELSE 0 END), 0)
		FROM itinerary
	`).Scan(&stats.TotalActivities, &stats.Completed, &stats.Proposals)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate itinerary stats: %w", err)
	}

	stats.Pending = stats.TotalActivities - stats.Completed
	if stats.TotalActivities > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.TotalActivities) * 100
	}
	return stats, nil
}
