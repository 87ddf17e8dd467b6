package model

import "time"

// Travel statuses.
const (
	TravelPending   = "Pending"
	TravelConfirmed = "Confirmed"
	TravelCancelled = "Cancelled"
)

// Travel represents a single booking: flight, hotel, car, or other transport.
type Travel struct {
	Date          *time.Time
	DepartureTime *time.Time
	ArrivalTime   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Type          string
	Provider      string
	Details       string
	Confirmation  string
	Status        string
	Notes         string
	ID            int64
	Cost          float64
}

// IsUpcoming reports whether the booking date is today or later.
func (t *Travel) IsUpcoming(now time.Time) bool {
	if t.Date == nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return !t.Date.Before(today)
}

// DaysUntil reports full days until the booking. The second return is
// false when no date is set or the date has passed.
func (t *Travel) DaysUntil(now time.Time) (int, bool) {
	if t.Date == nil {
		return 0, false
	}
	days := int(t.Date.Sub(now).Hours() / 24)
	if days < 0 {
		return 0, false
	}
	return days, true
}
