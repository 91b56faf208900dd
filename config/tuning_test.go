package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTuning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	raw := []byte(`
token_symbol: TLM
token_precision: 1
forge_fee: 50000
membership_fee: 100000
ignore_memo: refund
hardening_interval_secs: 86400
hardening_rate_num: 105
hardening_rate_den: 100
base_cooldown_secs: 86400
move_cost_divisor: 100
`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tuning.TokenSymbol != "TLM" || tuning.ForgeFee != 50000 {
		t.Fatalf("unexpected tuning: %+v", tuning)
	}
	if tuning.HardeningIntervalSecs != 86400 || tuning.HardeningRateNum != 105 {
		t.Fatalf("unexpected hardening values: %+v", tuning)
	}
}

func TestLoadTuningPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("forge_fee: 123\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tuning.ForgeFee != 123 {
		t.Fatalf("forge_fee=%d want 123", tuning.ForgeFee)
	}
	// Unset keys fall back to the defaults.
	if tuning.TokenSymbol != "TLM" || tuning.MoveCostDivisor != 100 {
		t.Fatalf("defaults not applied: %+v", tuning)
	}
}

func TestLoadTuningRejectsZeroDivisors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("move_cost_divisor: 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadTuning(path); err == nil {
		t.Fatal("expected error for zero divisor")
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
