package models

import "testing"

func TestSupplyIsLowStock(t *testing.T) {
	cases := []struct {
		current, minimum float64
		want             bool
	}{
		{current: 5, minimum: 10, want: true},
		{current: 10, minimum: 10, want: true},
		{current: 10.001, minimum: 10, want: false},
		{current: 0, minimum: 0, want: true},
	}
	for _, c := range cases {
		s := &Supply{CurrentStock: c.current, MinimumStock: c.minimum}
		if got := s.IsLowStock(); got != c.want {
			t.Errorf("IsLowStock(current=%v, minimum=%v) = %v, want %v",
				c.current, c.minimum, got, c.want)
		}
	}
}
