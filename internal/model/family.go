package model

import (
	"strings"
	"time"
)

// FamilyStatus tracks where a family member sits in the approval cycle.
type FamilyStatus string

// Family approval statuses.
const (
	FamilyNotAsked FamilyStatus = "Not Asked"
	FamilyPending  FamilyStatus = "Pending"
	FamilyApproved FamilyStatus = "Approved"
	FamilyDeclined FamilyStatus = "Declined"
)

// Next advances the approval cycle: Not Asked -> Pending -> Approved.
// Approved is terminal; Declined is only ever set directly.
func (s FamilyStatus) Next() FamilyStatus {
	switch s {
	case FamilyNotAsked:
		return FamilyPending
	case FamilyPending:
		return FamilyApproved
	default:
		return s
	}
}

// NormalizeFamilyStatus maps a loosely-typed source status onto the
// canonical set. Unknown or empty values become Pending.
func NormalizeFamilyStatus(s string) FamilyStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not asked":
		return FamilyNotAsked
	case "approved":
		return FamilyApproved
	case "declined":
		return FamilyDeclined
	default:
		return FamilyPending
	}
}

// Family tracks one family member's approval of the plan.
type Family struct {
	ConversationDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Name             string
	Relationship     string
	Reaction         string
	Notes            string
	Status           FamilyStatus
	ID               int64
}

// IsApproved reports whether the member has approved.
func (f *Family) IsApproved() bool {
	return f.Status == FamilyApproved
}

// DaysSinceConversation reports full days elapsed since the recorded
// conversation. The second return is false when no conversation date is set.
func (f *Family) DaysSinceConversation(now time.Time) (int, bool) {
	if f.ConversationDate == nil {
		return 0, false
	}
	return int(now.Sub(*f.ConversationDate).Hours() / 24), true
}
