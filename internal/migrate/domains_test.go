package migrate

import (
	"testing"

	"github.com/Veraticus/hera-migrate/internal/model"
	"github.com/Veraticus/hera-migrate/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBudget_Defaults(t *testing.T) {
	budget, err := buildBudget(source.Record{"category": "Venue"})
	require.NoError(t, err)
	assert.Equal(t, model.BudgetOutstanding, budget.Status)
	assert.Equal(t, model.PriorityMedium, budget.Priority)
	assert.Zero(t, budget.Amount)

	budget, err = buildBudget(source.Record{"amount": 100.0})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", budget.Category)
}

func TestBuildBudget_Errors(t *testing.T) {
	tests := []struct {
		rec  source.Record
		name string
	}{
		{name: "negative amount", rec: source.Record{"category": "Venue", "amount": -5.0}},
		{name: "negative saved", rec: source.Record{"category": "Venue", "saved": "-$100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildBudget(tt.rec)
			assert.Error(t, err)
		})
	}
}

func TestBuildFamily_StatusNormalization(t *testing.T) {
	member, err := buildFamily(source.Record{"name": "Papa", "status": "APPROVED"})
	require.NoError(t, err)
	assert.Equal(t, model.FamilyApproved, member.Status)

	member, err = buildFamily(source.Record{"name": "Graden", "status": "who knows"})
	require.NoError(t, err)
	assert.Equal(t, model.FamilyPending, member.Status)
}

func TestBuildTravel_Defaults(t *testing.T) {
	booking, err := buildTravel(source.Record{"provider": "United", "status": "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "Other", booking.Type)
	assert.Equal(t, model.TravelConfirmed, booking.Status)
	assert.Nil(t, booking.Date)

	booking, err = buildTravel(source.Record{"date": "03/14/2026", "departure_time": "8:45 AM"})
	require.NoError(t, err)
	require.NotNil(t, booking.Date)
	require.NotNil(t, booking.DepartureTime)
	assert.Equal(t, "08:45:00", booking.DepartureTime.Format("15:04:05"))
	assert.Equal(t, model.TravelPending, booking.Status)
}

func TestBuildItinerary_ProposalDetection(t *testing.T) {
	tests := []struct {
		rec      source.Record
		name     string
		proposal bool
	}{
		{name: "explicit flag", rec: source.Record{"activity": "Dinner", "is_proposal": "yes"}, proposal: true},
		{name: "activity text", rec: source.Record{"activity": "Sunset PROPOSAL at the overlook"}, proposal: true},
		{name: "propose verb", rec: source.Record{"activity": "Propose at dinner"}, proposal: true},
		{name: "ordinary activity", rec: source.Record{"activity": "Museum visit"}, proposal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity, err := buildItinerary(tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.proposal, activity.IsProposal)
		})
	}
}

func TestBuildItinerary_DayValidation(t *testing.T) {
	activity, err := buildItinerary(source.Record{"activity": "Dinner"})
	require.NoError(t, err)
	assert.Equal(t, 1, activity.Day)

	activity, err = buildItinerary(source.Record{"activity": "Dinner", "day": "3"})
	require.NoError(t, err)
	assert.Equal(t, 3, activity.Day)

	for _, bad := range []any{2.5, 0.0, "three"} {
		_, err := buildItinerary(source.Record{"activity": "Dinner", "day": bad})
		assert.Error(t, err, "day %v", bad)
	}
}

func TestBuildPacking_RingDefaultsCritical(t *testing.T) {
	item, err := buildPacking(source.Record{"item": "Engagement ring box"})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityCritical, item.Priority)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "General", item.Category)

	item, err = buildPacking(source.Record{"item": "Socks", "quantity": 4.0, "packed": "1"})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityMedium, item.Priority)
	assert.Equal(t, 4, item.Quantity)
	assert.True(t, item.Packed)

	// An explicit priority beats the ring default.
	item, err = buildPacking(source.Record{"item": "Ring polish cloth", "priority": "Low"})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityLow, item.Priority)
}

func TestBuildRing_DefaultsAndInvariants(t *testing.T) {
	ring, err := buildRing(source.Record{"jeweler": "Smith & Co", "cost": "$6,400.00", "deposit_paid": 2000.0, "status": "ordered"})
	require.NoError(t, err)
	assert.Equal(t, model.RingOrdered, ring.Status)
	assert.Equal(t, 4400.0, ring.BalanceDue())
	assert.False(t, ring.IsPaidOff())

	ring, err = buildRing(source.Record{})
	require.NoError(t, err)
	assert.Equal(t, model.RingResearching, ring.Status)
	assert.Zero(t, ring.BalanceDue())
	assert.False(t, ring.IsPaidOff())
}

func TestBuildFile_FallbacksAndSize(t *testing.T) {
	file, err := buildFile(source.Record{"original_name": "Itinerary (final).pdf", "size": "27.4 KB"})
	require.NoError(t, err)
	assert.Equal(t, "Itinerary (final).pdf", file.Filename)
	assert.Equal(t, "Itinerary (final).pdf", file.OriginalName)
	assert.Equal(t, "27.4 KB", file.Size)
	assert.Equal(t, ".pdf", file.Type)
	assert.True(t, file.IsDocument())

	file, err = buildFile(source.Record{"filename": "photo.JPG", "size": 2048.0, "path": "/uploads/photo.JPG"})
	require.NoError(t, err)
	assert.Equal(t, "2048 B", file.Size)
	assert.Equal(t, ".jpg", file.Type)
	assert.Equal(t, "/uploads/photo.JPG", file.UploadPath)
	assert.True(t, file.IsImage())

	_, err = buildFile(source.Record{"size": "1 KB"})
	assert.Error(t, err)
}

func TestResult_RenderCapsErrors(t *testing.T) {
	result := newResult()
	result.Counts["budget"] = 3
	for i := 0; i < 7; i++ {
		result.Errors = append(result.Errors, "Budget: bad record")
	}

	out := result.Render(5)
	assert.Contains(t, out, "7 record(s) skipped")
	assert.Contains(t, out, "and 2 more")
	assert.Len(t, result.Errors, 7)
}
