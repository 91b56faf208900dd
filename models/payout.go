package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payout is an authorized reward transfer instruction. Rows are written in
// the same transaction that flips a mission's distributed flag; the actual
// token movement is the host's concern.
type Payout struct {
	GUID          uuid.UUID `json:"guid" gorm:"primaryKey;size:36"`
	MissionName   string    `json:"mission_name" gorm:"index;size:64"`
	PlayerAddress string    `json:"player_address" gorm:"index;size:64"`
	Amount        uint64    `json:"amount" gorm:"not null"`
	Denom         string    `json:"denom" gorm:"size:16;not null"`
	CreatedAt     int64     `json:"created_at" gorm:"autoCreateTime"`
}

func (p *Payout) BeforeCreate(tx *gorm.DB) (err error) {
	if p.GUID == uuid.Nil {
		p.GUID = uuid.New()
	}
	return
}
