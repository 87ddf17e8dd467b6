// Package model defines the typed records the migration writes.
package model

import (
	"math"
	"time"
)

// Budget statuses.
const (
	BudgetOutstanding = "Outstanding"
	BudgetPaid        = "Paid"
)

// Budget represents one savings line item for the trip.
type Budget struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Category  string
	Status    string
	Notes     string
	Priority  string
	ID        int64
	Amount    float64
	Saved     float64
}

// Remaining reports the amount still to be saved. It is derived from
// Amount and Saved at read time, never persisted.
func (b *Budget) Remaining() float64 {
	return math.Max(0, b.Amount-b.Saved)
}

// ProgressPercentage reports savings progress from 0 to 100.
func (b *Budget) ProgressPercentage() float64 {
	if b.Amount == 0 {
		if b.Saved > 0 {
			return 100
		}
		return 0
	}
	return math.Min(b.Saved/b.Amount*100, 100)
}

// IsComplete reports whether the item is fully saved.
func (b *Budget) IsComplete() bool {
	return b.Saved >= b.Amount
}
