package models

type MaintenanceVendorModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null"`
	ContactEmail string `gorm:"size:255;not null"`
	Phone        string `gorm:"size:50"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (MaintenanceVendorModel) TableName() string {
	return "maintenance_vendors"
}

type OrganizationTierModel struct {
	ID                  uint   `gorm:"primaryKey"`
	MaintenanceVendorID uint   `gorm:"not null;uniqueIndex:idx_vendor_org"`
	OrganizationID      uint   `gorm:"not null;uniqueIndex:idx_vendor_org"`
	Tier                string `gorm:"size:30;not null;index"`
	Active              bool   `gorm:"not null;default:true"`
	CreatedAt           int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (OrganizationTierModel) TableName() string {
	return "vendor_organization_tiers"
}
