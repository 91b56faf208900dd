package models

// Stats is the combat stat block shared by owners and players. Every stat
// has an armed variant that takes effect while the address holds forge
// membership.
type Stats struct {
	Defense      uint64 `json:"defense" gorm:"default:0"`
	DefenseArmed uint64 `json:"defense_armed" gorm:"default:0"`
	Attack       uint64 `json:"attack" gorm:"default:0"`
	AttackArmed  uint64 `json:"attack_armed" gorm:"default:0"`
	MoveCost     uint64 `json:"move_cost" gorm:"default:0"`
}

func (s Stats) DefenseScore(armed bool) uint64 {
	if armed {
		return s.DefenseArmed
	}
	return s.Defense
}

func (s Stats) AttackScore(armed bool) uint64 {
	if armed {
		return s.AttackArmed
	}
	return s.Attack
}
