package entity

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusInKitchen, StatusOutForDelivery, true},
		{StatusInKitchen, StatusCancelled, true},
		{StatusOutForDelivery, StatusDelivered, true},
		{StatusInKitchen, StatusDelivered, false},
		{StatusOutForDelivery, StatusCancelled, false},
		{StatusDelivered, StatusInKitchen, false},
		{StatusCancelled, StatusOutForDelivery, false},
		{"", StatusInKitchen, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Fatalf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
