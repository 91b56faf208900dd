package request

// StatsPatch updates a subset of an entity's stats. Nil fields are left
// unchanged; there are no magic sentinel values.
type StatsPatch struct {
	Defense      *uint64 `json:"defense,omitempty"`
	DefenseArmed *uint64 `json:"defense_armed,omitempty"`
	Attack       *uint64 `json:"attack,omitempty"`
	AttackArmed  *uint64 `json:"attack_armed,omitempty"`
	MoveCost     *uint64 `json:"move_cost,omitempty"`
}

func (p StatsPatch) Empty() bool {
	return p.Defense == nil && p.DefenseArmed == nil &&
		p.Attack == nil && p.AttackArmed == nil && p.MoveCost == nil
}
