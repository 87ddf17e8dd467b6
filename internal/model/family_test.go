package model

import "testing"

func TestFamilyStatus_Next(t *testing.T) {
	tests := []struct {
		status FamilyStatus
		want   FamilyStatus
	}{
		{FamilyNotAsked, FamilyPending},
		{FamilyPending, FamilyApproved},
		{FamilyApproved, FamilyApproved},
		{FamilyDeclined, FamilyDeclined},
	}

	for _, tt := range tests {
		if got := tt.status.Next(); got != tt.want {
			t.Errorf("%s.Next() = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestNormalizeFamilyStatus(t *testing.T) {
	tests := []struct {
		in   string
		want FamilyStatus
	}{
		{"Approved", FamilyApproved},
		{"approved", FamilyApproved},
		{"  DECLINED  ", FamilyDeclined},
		{"Not Asked", FamilyNotAsked},
		{"Pending", FamilyPending},
		{"", FamilyPending},
		{"something else", FamilyPending},
	}

	for _, tt := range tests {
		if got := NormalizeFamilyStatus(tt.in); got != tt.want {
			t.Errorf("NormalizeFamilyStatus(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
