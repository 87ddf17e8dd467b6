package model

import "testing"

func TestRing_BalanceDue(t *testing.T) {
	tests := []struct {
		name string
		ring Ring
		want float64
	}{
		{name: "deposit paid", ring: Ring{Cost: 6400, DepositPaid: 2000}, want: 4400},
		{name: "paid in full", ring: Ring{Cost: 6400, DepositPaid: 6400}, want: 0},
		{name: "overpaid clamps to zero", ring: Ring{Cost: 100, DepositPaid: 150}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ring.BalanceDue(); got != tt.want {
				t.Errorf("BalanceDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRing_IsPaidOff(t *testing.T) {
	paid := Ring{Cost: 6400, DepositPaid: 6400}
	if !paid.IsPaidOff() {
		t.Error("expected fully paid ring to be paid off")
	}
	free := Ring{}
	if free.IsPaidOff() {
		t.Error("a ring with no cost is never paid off")
	}
}
