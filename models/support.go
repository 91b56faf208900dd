package models

// SupportRecord caches the combined scores of an owner and its supporters.
// The cache is always overwritten by a full recompute, never adjusted in
// place, so it cannot drift from the source stats.
type SupportRecord struct {
	OwnerAddress      string `json:"owner_address" gorm:"primaryKey;size:64"`
	TotalDefenseScore uint64 `json:"total_defense_score" gorm:"default:0"`
	TotalAttackScore  uint64 `json:"total_attack_score" gorm:"default:0"`
	TotalMoveCost     uint64 `json:"total_move_cost" gorm:"default:0"`
}

// Supporter links a player to the owner it backs. The player address is the
// primary key, which enforces at most one owner per player and doubles as
// the player-to-owner index.
type Supporter struct {
	PlayerAddress string `json:"player_address" gorm:"primaryKey;size:64"`
	OwnerAddress  string `json:"owner_address" gorm:"index;not null;size:64"`
	Position      int    `json:"position" gorm:"default:0"`
}
