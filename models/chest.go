package models

type Chest struct {
	LandID       uint64 `json:"land_id" gorm:"primaryKey;autoIncrement:false"`
	OwnerAddress string `json:"owner_address" gorm:"index;not null;size:64"`
	Level        int    `json:"level" gorm:"default:0"`
	StoredValue  uint64 `json:"stored_value" gorm:"default:0"`
}
