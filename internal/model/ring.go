package model

import (
	"math"
	"time"
)

// Ring purchase statuses.
const (
	RingResearching = "Researching"
	RingDesigning   = "Designing"
	RingOrdered     = "Ordered"
	RingComplete    = "Complete"
)

// Ring tracks the engagement ring purchase.
type Ring struct {
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Jeweler          string
	Stone            string
	Metal            string
	StyleInspiration string
	Insurance        string
	Status           string
	Notes            string
	ID               int64
	Cost             float64
	DepositPaid      float64
}

// BalanceDue reports the remaining balance. Derived, never persisted.
func (r *Ring) BalanceDue() float64 {
	return math.Max(0, r.Cost-r.DepositPaid)
}

// IsPaidOff reports whether the ring is fully paid for.
func (r *Ring) IsPaidOff() bool {
	if r.Cost <= 0 {
		return false
	}
	return r.DepositPaid >= r.Cost
}
