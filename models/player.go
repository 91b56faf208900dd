package models

type Player struct {
	Address string `json:"address" gorm:"primaryKey;size:64"`
	Stats   `gorm:"embedded"`
}
