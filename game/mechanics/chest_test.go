package mechanics

import "testing"

func TestChestLevelForAmount(t *testing.T) {
	if level, ok := ChestLevelForAmount(200); !ok || level != 2 {
		t.Fatalf("got (%d, %v) want (2, true)", level, ok)
	}
	if level, ok := ChestLevelForAmount(10000); !ok || level != 16 {
		t.Fatalf("got (%d, %v) want (16, true)", level, ok)
	}
	if _, ok := ChestLevelForAmount(999); ok {
		t.Fatal("999 matched a tier, want no match")
	}
	if _, ok := ChestLevelForAmount(0); ok {
		t.Fatal("0 matched a tier, want no match")
	}
}

func TestDisplayAmount(t *testing.T) {
	if got := DisplayAmount(2000, 1); got != 200 {
		t.Fatalf("got %d want 200", got)
	}
	if got := DisplayAmount(999, 1); got != 99 {
		t.Fatalf("got %d want 99", got)
	}
	if got := DisplayAmount(42, 0); got != 42 {
		t.Fatalf("got %d want 42", got)
	}
}
