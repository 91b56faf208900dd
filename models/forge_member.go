package models

// ForgeMember marks an address as forge-enrolled. Presence switches every
// stat read for that address to the armed variant.
type ForgeMember struct {
	Address string `json:"address" gorm:"primaryKey;size:64"`
}
