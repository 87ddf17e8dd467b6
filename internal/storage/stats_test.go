package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/hera-migrate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStatsFixtures(t *testing.T, store *SQLiteStorage) {
	t.Helper()
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveBudgets(ctx, []model.Budget{
		{Category: "Venue", Amount: 1000, Saved: 250, Status: model.BudgetOutstanding, Priority: model.PriorityHigh},
		{Category: "Photography", Amount: 500, Saved: 500, Status: model.BudgetPaid, Priority: model.PriorityMedium},
	}))
	require.NoError(t, tx.SaveFamily(ctx, []model.Family{
		{Name: "Mom", Status: model.FamilyApproved},
		{Name: "Dad", Status: model.FamilyApproved},
		{Name: "Uncle", Status: model.FamilyPending},
		{Name: "Graden", Status: model.FamilyNotAsked},
	}))
	require.NoError(t, tx.SavePacking(ctx, []model.Packing{
		{Item: "The ring", Packed: true, Quantity: 1, Priority: model.PriorityCritical},
		{Item: "Socks", Packed: false, Quantity: 4, Priority: model.PriorityLow},
	}))
	require.NoError(t, tx.SaveItinerary(ctx, []model.Itinerary{
		{Day: 1, Activity: "Arrive", Completed: true, Priority: model.PriorityMedium},
		{Day: 2, Activity: "Dinner proposal", IsProposal: true, Priority: model.PriorityCritical},
	}))
	require.NoError(t, tx.Commit())
}

func TestSQLiteStorage_BudgetStats(t *testing.T) {
	store := createTestStorage(t)
	seedStatsFixtures(t, store)

	stats, err := store.BudgetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ItemCount)
	assert.Equal(t, 1500.0, stats.TotalAmount)
	assert.Equal(t, 750.0, stats.TotalSaved)
	assert.Equal(t, 750.0, stats.TotalRemaining)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.InDelta(t, 50.0, stats.ProgressPercentage, 0.001)
}

func TestSQLiteStorage_FamilyStats(t *testing.T) {
	store := createTestStorage(t)
	seedStatsFixtures(t, store)

	stats, err := store.FamilyStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Approved)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.NotAsked)
	assert.Zero(t, stats.Declined)
	assert.InDelta(t, 50.0, stats.ApprovalRate, 0.001)
}

func TestSQLiteStorage_PackingStats(t *testing.T) {
	store := createTestStorage(t)
	seedStatsFixtures(t, store)

	stats, err := store.PackingStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalItems)
	assert.Equal(t, 1, stats.PackedItems)
	assert.Equal(t, 1, stats.UnpackedItems)
	assert.Equal(t, 1, stats.CriticalItems)
	assert.InDelta(t, 50.0, stats.ProgressPercentage, 0.001)
}

func TestSQLiteStorage_ItineraryStats(t *testing.T) {
	store := createTestStorage(t)
	seedStatsFixtures(t, store)

	stats, err := store.ItineraryStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalActivities)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Proposals)
	assert.InDelta(t, 50.0, stats.CompletionRate, 0.001)
}

func TestSQLiteStorage_StatsOnEmptyDatabase(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	budget, err := store.BudgetStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, budget.ItemCount)
	assert.Zero(t, budget.ProgressPercentage)

	family, err := store.FamilyStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, family.Total)
	assert.Zero(t, family.ApprovalRate)
}
