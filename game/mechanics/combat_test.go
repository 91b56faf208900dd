package mechanics

import "testing"

func TestUsefulAttackPoints(t *testing.T) {
	tests := []struct {
		name                  string
		attack, target, total uint64
		want                  uint64
	}{
		{"full credit", 60, 100, 0, 60},
		{"clamped to remaining", 60, 100, 60, 40},
		{"exact fit", 40, 100, 60, 40},
		{"target already met", 60, 100, 100, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := UsefulAttackPoints(tc.attack, tc.target, tc.total); got != tc.want {
				t.Fatalf("got %d want %d", got, tc.want)
			}
		})
	}
}

func TestCooldownPeriod(t *testing.T) {
	if got := CooldownPeriod(0, 86400, 100); got != 86400 {
		t.Fatalf("got %d want 86400", got)
	}
	// 250/100 truncates to 2 extra seconds.
	if got := CooldownPeriod(250, 86400, 100); got != 86402 {
		t.Fatalf("got %d want 86402", got)
	}
}
