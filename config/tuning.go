package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the balance constants of the economy. Values live in a yaml
// file so they can be adjusted without a rebuild.
type Tuning struct {
	TokenSymbol    string `yaml:"token_symbol"`
	TokenPrecision int    `yaml:"token_precision"`

	// Fees are raw token units (amount * 10^precision).
	ForgeFee      uint64 `yaml:"forge_fee"`
	MembershipFee uint64 `yaml:"membership_fee"`

	// Transfers carrying this memo are internal refunds and must be ignored.
	IgnoreMemo string `yaml:"ignore_memo"`

	HardeningIntervalSecs int64 `yaml:"hardening_interval_secs"`
	// Hardening multiplies the target by rate_num/rate_den, floored.
	HardeningRateNum uint64 `yaml:"hardening_rate_num"`
	HardeningRateDen uint64 `yaml:"hardening_rate_den"`

	BaseCooldownSecs int64  `yaml:"base_cooldown_secs"`
	MoveCostDivisor  uint64 `yaml:"move_cost_divisor"`
}

func (t Tuning) validate() error {
	if t.TokenSymbol == "" {
		return fmt.Errorf("token_symbol is required")
	}
	if t.HardeningRateDen == 0 {
		return fmt.Errorf("hardening_rate_den must be positive")
	}
	if t.MoveCostDivisor == 0 {
		return fmt.Errorf("move_cost_divisor must be positive")
	}
	return nil
}

func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// DefaultTuning returns the live balance values. Tests run against these.
func DefaultTuning() Tuning {
	return Tuning{
		TokenSymbol:           "TLM",
		TokenPrecision:        1,
		ForgeFee:              50000,
		MembershipFee:         100000,
		IgnoreMemo:            "refund",
		HardeningIntervalSecs: 86400,
		HardeningRateNum:      105,
		HardeningRateDen:      100,
		BaseCooldownSecs:      86400,
		MoveCostDivisor:       100,
	}
}
