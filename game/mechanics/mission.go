package mechanics

import "math/big"

// HardenedTarget raises a mission target by rateNum/rateDen, floored.
// The multiplication runs through a wide intermediate so large targets
// cannot wrap around.
func HardenedTarget(target, rateNum, rateDen uint64) uint64 {
	v := new(big.Int).SetUint64(target)
	v.Mul(v, new(big.Int).SetUint64(rateNum))
	v.Div(v, new(big.Int).SetUint64(rateDen))
	if !v.IsUint64() {
		return ^uint64(0)
	}
	return v.Uint64()
}
