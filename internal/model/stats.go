package model

// BudgetStats summarizes savings progress across all budget items.
type BudgetStats struct {
	TotalAmount        float64
	TotalSaved         float64
	TotalRemaining     float64
	ProgressPercentage float64
	ItemCount          int
	CompletedCount     int
}

// FamilyStats summarizes the approval pipeline.
type FamilyStats struct {
	ApprovalRate float64
	Total        int
	NotAsked     int
	Pending      int
	Approved     int
	Declined     int
}

// PackingStats summarizes packing progress.
type PackingStats struct {
	ProgressPercentage float64
	TotalItems         int
	PackedItems        int
	UnpackedItems      int
	CriticalItems      int
}

// ItineraryStats summarizes itinerary completion.
type ItineraryStats struct {
	CompletionRate  float64
	TotalActivities int
	Completed       int
	Pending         int
	Proposals       int
}
