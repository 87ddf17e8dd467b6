package storage

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/hera-migrate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create migrated in-memory test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func timePtr(hour, minute int) *time.Time {
	d := time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
	return &d
}

func TestSQLiteStorage_SaveBudgets(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	budgets := []model.Budget{
		{Category: "Venue", Amount: 15000, Saved: 5000, Status: model.BudgetOutstanding, Priority: model.PriorityCritical},
		{Category: "Photography", Amount: 3500, Saved: 3500, Status: model.BudgetPaid, Priority: model.PriorityHigh, Notes: "Paid in full"},
	}

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveBudgets(ctx, budgets))
	require.NoError(t, tx.Commit())

	saved, err := store.ListBudgets(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "Venue", saved[0].Category)
	assert.Equal(t, 15000.0, saved[0].Amount)
	assert.Equal(t, 10000.0, saved[0].Remaining())
	assert.Equal(t, model.BudgetPaid, saved[1].Status)
	assert.Equal(t, "Paid in full", saved[1].Notes)
}

func TestSQLiteStorage_Rollback(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveBudgets(ctx, []model.Budget{{Category: "Venue", Status: model.BudgetOutstanding, Priority: model.PriorityMedium}}))
	require.NoError(t, tx.SavePacking(ctx, []model.Packing{{Item: "Socks", Quantity: 4, Priority: model.PriorityLow}}))
	require.NoError(t, tx.Rollback())

	counts, err := store.RecordCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, counts["budget"])
	assert.Equal(t, 0, counts["packing"])
}

func TestSQLiteStorage_SaveFamilyAndTravel(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	members := []model.Family{
		{Name: "Papa", Relationship: "Father", Status: model.FamilyApproved, ConversationDate: datePtr(2026, 2, 14), Reaction: "Positive"},
		{Name: "Graden", Status: model.FamilyNotAsked, Notes: "Need to text"},
	}
	bookings := []model.Travel{
		{
			Type:          "Flight",
			Provider:      "United",
			Confirmation:  "ABC123",
			Date:          datePtr(2026, 3, 14),
			DepartureTime: timePtr(8, 45),
			ArrivalTime:   timePtr(14, 30),
			Cost:          842.50,
			Status:        model.TravelConfirmed,
		},
	}

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveFamily(ctx, members))
	require.NoError(t, tx.SaveTravel(ctx, bookings))
	require.NoError(t, tx.Commit())

	gotFamily, err := store.ListFamily(ctx)
	require.NoError(t, err)
	require.Len(t, gotFamily, 2)
	assert.Equal(t, model.FamilyApproved, gotFamily[0].Status)
	require.NotNil(t, gotFamily[0].ConversationDate)
	assert.Equal(t, "2026-02-14", gotFamily[0].ConversationDate.Format("2006-01-02"))
	assert.Nil(t, gotFamily[1].ConversationDate)

	gotTravel, err := store.ListTravel(ctx)
	require.NoError(t, err)
	require.Len(t, gotTravel, 1)
	require.NotNil(t, gotTravel[0].DepartureTime)
	assert.Equal(t, "08:45:00", gotTravel[0].DepartureTime.Format("15:04:05"))
	assert.Equal(t, 842.50, gotTravel[0].Cost)
}

func TestSQLiteStorage_SaveItineraryPackingRingFiles(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveItinerary(ctx, []model.Itinerary{
		{Day: 3, Activity: "Sunset proposal at the overlook", IsProposal: true, Priority: model.PriorityCritical},
	}))
	require.NoError(t, tx.SavePacking(ctx, []model.Packing{
		{Item: "The ring", Quantity: 1, Priority: model.PriorityCritical},
	}))
	require.NoError(t, tx.SaveRings(ctx, []model.Ring{
		{Jeweler: "Smith & Co", Status: model.RingOrdered, Cost: 6400, DepositPaid: 2000},
	}))
	require.NoError(t, tx.SaveFiles(ctx, []model.File{
		{Filename: "itinerary_v2.pdf", OriginalName: "Itinerary (final).pdf", Size: "27.4 KB", Type: ".pdf"},
	}))
	require.NoError(t, tx.Commit())

	activities, err := store.ListItinerary(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.True(t, activities[0].IsProposal)
	assert.True(t, activities[0].IsCritical())

	rings, err := store.ListRings(ctx)
	require.NoError(t, err)
	require.Len(t, rings, 1)
	assert.Equal(t, 4400.0, rings[0].BalanceDue())

	files, err := store.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "27.4 KB", files[0].Size)
	assert.True(t, files[0].IsDocument())
}

func TestSQLiteStorage_EmptySavesAreNoops(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveBudgets(ctx, nil))
	require.NoError(t, tx.SaveFiles(ctx, nil))
	require.NoError(t, tx.Commit())

	counts, err := store.RecordCounts(ctx)
	require.NoError(t, err)
	for domain, count := range counts {
		assert.Zero(t, count, "domain %s", domain)
	}
}

func TestSQLiteStorage_Reset(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SaveBudgets(ctx, []model.Budget{{Category: "Venue", Status: model.BudgetOutstanding, Priority: model.PriorityMedium}}))
	require.NoError(t, tx.Commit())

	require.NoError(t, store.Reset(ctx))

	counts, err := store.RecordCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, counts["budget"])

	users, err := store.CountUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, users)
}
