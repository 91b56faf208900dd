package mechanics

import "testing"

func TestPayoutAmount(t *testing.T) {
	tests := []struct {
		name                string
		points, pool, total uint64
		want                uint64
	}{
		{"sixty percent", 60, 1000, 100, 600},
		{"forty percent", 40, 1000, 100, 400},
		{"floors fractions", 1, 1000, 3, 333},
		{"zero total", 10, 1000, 0, 0},
		{"tiny pool floors to zero", 1, 1, 3, 0},
		// 2^63 points in a 2^10 pool would overflow a uint64 product;
		// the wide intermediate keeps the result exact.
		{"wide intermediate", 1 << 63, 1 << 10, 1 << 63, 1 << 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PayoutAmount(tc.points, tc.pool, tc.total); got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}
