package models

type OrganizationModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}

type LocationModel struct {
	ID             uint   `gorm:"primaryKey"`
	OrganizationID uint   `gorm:"not null;index"`
	Name           string `gorm:"size:200;not null"`
	Street         string `gorm:"size:200;not null"`
	City           string `gorm:"size:100;not null"`
	Zip            string `gorm:"size:20;not null"`
	Active         bool   `gorm:"not null;default:true"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (LocationModel) TableName() string {
	return "organization_locations"
}
