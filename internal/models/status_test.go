package models

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Status
	}{
		{"open token", "open", StatusAvailable},
		{"available token", "available", StatusAvailable},
		{"full token", "full", StatusFull},
		{"close token", "close", StatusClosed},
		{"closed token", "closed", StatusClosed},
		{"undefined token", "undefined", StatusUnspecified},
		{"empty", "", StatusUnspecified},
		{"unknown", "maybe", StatusUnspecified},
		{"case differs", "Open", StatusUnspecified},
		{"padded", " open", StatusUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStatus(tt.raw); got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStatus_Rank(t *testing.T) {
	statuses := AllStatuses()
	for i := 1; i < len(statuses); i++ {
		if statuses[i-1].Rank() >= statuses[i].Rank() {
			t.Errorf("%v.Rank() = %d, want less than %v.Rank() = %d",
				statuses[i-1], statuses[i-1].Rank(), statuses[i], statuses[i].Rank())
		}
	}

	if Status("bogus").Rank() != StatusUnspecified.Rank() {
		t.Errorf("unknown status rank = %d, want %d", Status("bogus").Rank(), StatusUnspecified.Rank())
	}
}

func TestStatus_Label(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusAvailable, "空きあり"},
		{StatusFull, "満船"},
		{StatusClosed, "休船"},
		{StatusUnspecified, "-"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
