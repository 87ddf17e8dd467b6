package model

import "testing"

func TestPacking_IsCritical(t *testing.T) {
	tests := []struct {
		name    string
		packing Packing
		want    bool
	}{
		{name: "critical priority", packing: Packing{Item: "Passport", Priority: PriorityCritical}, want: true},
		{name: "ring item escalates", packing: Packing{Item: "THE RING", Priority: PriorityLow}, want: true},
		{name: "ring substring", packing: Packing{Item: "Ring box", Priority: PriorityMedium}, want: true},
		{name: "ordinary item", packing: Packing{Item: "Socks", Priority: PriorityHigh}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.packing.IsCritical(); got != tt.want {
				t.Errorf("IsCritical() = %v, want %v", got, tt.want)
			}
		})
	}
}
