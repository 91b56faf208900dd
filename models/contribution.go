package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contribution is the running attack tally of one player on one mission.
type Contribution struct {
	GUID                  uuid.UUID `json:"guid" gorm:"primaryKey;size:36"`
	MissionName           string    `json:"mission_name" gorm:"index;uniqueIndex:idx_contribution_pair;size:64"`
	PlayerAddress         string    `json:"player_address" gorm:"index;uniqueIndex:idx_contribution_pair;size:64"`
	AttackPoints          uint64    `json:"attack_points" gorm:"default:0"`
	LastParticipationTime int64     `json:"last_participation_time" gorm:"default:0"`
}

func (c *Contribution) BeforeCreate(tx *gorm.DB) (err error) {
	if c.GUID == uuid.Nil {
		c.GUID = uuid.New()
	}
	return
}
