package mechanics

// UsefulAttackPoints clamps a raw attack contribution to what the mission
// still needs, so the cumulative total can never overshoot the target.
func UsefulAttackPoints(attackPoints, targetPoints, totalPoints uint64) uint64 {
	if totalPoints >= targetPoints {
		return 0
	}
	remaining := targetPoints - totalPoints
	if attackPoints > remaining {
		return remaining
	}
	return attackPoints
}

// CooldownPeriod returns the minimum seconds between two attacks by the
// same entity on the same mission. Heavier entities (higher move cost)
// wait longer.
func CooldownPeriod(moveCost uint64, baseSecs int64, moveCostDivisor uint64) int64 {
	return baseSecs + int64(moveCost/moveCostDivisor)
}
