package mechanics

import "math/big"

// PayoutAmount computes a contributor's share of the reward pool:
// floor(attackPoints * rewardAmount / totalAttackPoints). Integer
// arithmetic with a wide intermediate keeps the result identical across
// re-executions; binary floating point would not.
func PayoutAmount(attackPoints, rewardAmount, totalAttackPoints uint64) uint64 {
	if totalAttackPoints == 0 {
		return 0
	}
	v := new(big.Int).SetUint64(attackPoints)
	v.Mul(v, new(big.Int).SetUint64(rewardAmount))
	v.Div(v, new(big.Int).SetUint64(totalAttackPoints))
	if !v.IsUint64() {
		return ^uint64(0)
	}
	return v.Uint64()
}
