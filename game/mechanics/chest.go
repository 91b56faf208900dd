package mechanics

// chestTiers maps an exact deposit amount (whole display units) to the
// chest level it buys. Anything else leaves the level unchanged.
var chestTiers = map[uint64]int{
	100:   1,
	200:   2,
	300:   3,
	400:   4,
	500:   5,
	1000:  6,
	1500:  7,
	2000:  8,
	2500:  9,
	3000:  10,
	3500:  11,
	4000:  12,
	5000:  13,
	6000:  14,
	7500:  15,
	10000: 16,
}

// ChestLevelForAmount returns the level a deposit of displayAmount whole
// token units grants, or ok=false when the amount matches no tier.
func ChestLevelForAmount(displayAmount uint64) (level int, ok bool) {
	level, ok = chestTiers[displayAmount]
	return
}

// DisplayAmount truncates a raw token amount to whole display units for
// the given precision (number of decimals).
func DisplayAmount(raw uint64, precision int) uint64 {
	div := uint64(1)
	for i := 0; i < precision; i++ {
		div *= 10
	}
	return raw / div
}
