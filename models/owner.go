package models

type Owner struct {
	Address string `json:"address" gorm:"primaryKey;size:64"`
	Stats   `gorm:"embedded"`
	Lands   []Land `json:"lands,omitempty" gorm:"foreignKey:OwnerAddress;references:Address"`
}

// Land is a single parcel. An owner record exists only while it holds at
// least one land; deleting the last land deletes the owner.
type Land struct {
	LandID       uint64 `json:"land_id" gorm:"primaryKey;autoIncrement:false"`
	OwnerAddress string `json:"owner_address" gorm:"index;not null;size:64"`
}
