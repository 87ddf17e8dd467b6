package model

import "testing"

func TestBudget_Remaining(t *testing.T) {
	tests := []struct {
		name   string
		budget Budget
		want   float64
	}{
		{
			name:   "partially saved",
			budget: Budget{Amount: 1500, Saved: 400},
			want:   1100,
		},
		{
			name:   "fully saved",
			budget: Budget{Amount: 6400, Saved: 6400},
			want:   0,
		},
		{
			name:   "oversaved clamps to zero",
			budget: Budget{Amount: 100, Saved: 250},
			want:   0,
		},
		{
			name:   "empty budget",
			budget: Budget{},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.budget.Remaining(); got != tt.want {
				t.Errorf("Remaining() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudget_ProgressPercentage(t *testing.T) {
	tests := []struct {
		name   string
		budget Budget
		want   float64
	}{
		{name: "halfway", budget: Budget{Amount: 200, Saved: 100}, want: 50},
		{name: "oversaved caps at 100", budget: Budget{Amount: 100, Saved: 150}, want: 100},
		{name: "zero amount with savings", budget: Budget{Amount: 0, Saved: 10}, want: 100},
		{name: "zero amount no savings", budget: Budget{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.budget.ProgressPercentage(); got != tt.want {
				t.Errorf("ProgressPercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBudget_IsComplete(t *testing.T) {
	b := Budget{Amount: 500, Saved: 500}
	if !b.IsComplete() {
		t.Error("expected fully saved budget to be complete")
	}
	b.Saved = 499.99
	if b.IsComplete() {
		t.Error("expected underfunded budget to be incomplete")
	}
}
