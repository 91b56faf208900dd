package models

type Mission struct {
	Name               string `json:"name" gorm:"primaryKey;size:64"`
	TargetAttackPoints uint64 `json:"target_attack_points" gorm:"not null"`
	RewardAmount       uint64 `json:"reward_amount" gorm:"not null"`
	RewardDenom        string `json:"reward_denom" gorm:"size:16;not null"`
	TotalAttackPoints  uint64 `json:"total_attack_points" gorm:"default:0"`
	// Completed and Distributed are monotone; once true they never reset.
	Completed         bool  `json:"completed" gorm:"default:false"`
	Distributed       bool  `json:"distributed" gorm:"default:false"`
	Deadline          int64 `json:"deadline" gorm:"default:0"` // unix seconds, 0 = none
	LastHardeningTime int64 `json:"last_hardening_time" gorm:"default:0"`
}
