package models

import "gorm.io/datatypes"

type UserModel struct {
	ID                  uint   `gorm:"primaryKey"`
	Email               string `gorm:"uniqueIndex;size:255;not null"`
	Name                string `gorm:"size:100;not null"`
	Role                string `gorm:"size:30;not null;index"`
	PasswordHash        string `gorm:"size:255;not null"`
	OrganizationID      *uint  `gorm:"index"`
	MaintenanceVendorID *uint  `gorm:"index"`
	Permissions         datatypes.JSON
	LocationIDs         datatypes.JSON
	Active              bool `gorm:"not null;default:true"`
	LastLoginAt         *int64
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
