package model

import "time"

// Itinerary statuses derived from completion state and date.
const (
	ItineraryCompleted = "Completed"
	ItineraryOverdue   = "Overdue"
	ItineraryPending   = "Pending"
)

// Itinerary represents one planned activity on a given trip day.
type Itinerary struct {
	Date       *time.Time
	Time       *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Activity   string
	Location   string
	Notes      string
	Priority   string
	ID         int64
	Day        int
	Completed  bool
	IsProposal bool
}

// Status derives the activity status from completion and date.
func (i *Itinerary) Status(now time.Time) string {
	if i.Completed {
		return ItineraryCompleted
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if i.Date != nil && i.Date.Before(today) {
		return ItineraryOverdue
	}
	return ItineraryPending
}

// IsCritical reports whether the activity must not slip.
func (i *Itinerary) IsCritical() bool {
	return i.Priority == PriorityCritical || i.IsProposal
}
