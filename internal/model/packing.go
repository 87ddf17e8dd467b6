package model

import (
	"strings"
	"time"
)

// Packing represents one packing-list item.
type Packing struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Item      string
	Category  string
	Notes     string
	Priority  string
	ID        int64
	Quantity  int
	Packed    bool
}

// IsCritical reports whether the item is critical. Anything ring-related
// is critical regardless of its stored priority.
func (p *Packing) IsCritical() bool {
	return p.Priority == PriorityCritical || strings.Contains(strings.ToLower(p.Item), "ring")
}
