package storage

import (
	"context"
	"fmt"
)

// recordTables maps domain names to their backing tables, in the fixed
// domain order used everywhere else.
var recordTables = []struct {
	domain string
	table  string
}{
	{"budget", "budgets"},
	{"family", "family"},
	{"travel", "travel"},
	{"itinerary", "itinerary"},
	{"packing", "packing"},
	{"ring", "ring"},
	{"files", "files"},
}

// RecordCounts reports the number of rows in each domain table.
func (s *SQLiteStorage) RecordCounts(ctx context.Context) (map[string]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(recordTables))
	for _, rt := range recordTables {
		var count int
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", rt.table) //nolint:gosec // table names are static
		if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s rows: %w", rt.table, err)
		}
		counts[rt.domain] = count
	}
	return counts, nil
}

// CountUsers reports the number of credential records.
func (s *SQLiteStorage) CountUsers(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
