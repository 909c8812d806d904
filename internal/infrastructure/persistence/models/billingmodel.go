package models

import "gorm.io/datatypes"

type WorkOrderModel struct {
	ID               uint   `gorm:"primaryKey"`
	TicketID         uint   `gorm:"not null;index"`
	TechnicianID     uint   `gorm:"not null;index"`
	WorkOrderNumber  int    `gorm:"not null"`
	Description      string `gorm:"type:text"`
	Parts            datatypes.JSON
	OtherCharges     datatypes.JSON
	TotalCost        float64 `gorm:"not null"`
	TimeIn           string  `gorm:"size:5"`
	TimeOut          string  `gorm:"size:5"`
	CompletionStatus string  `gorm:"size:20;not null"`
	CreatedAt        int64   `gorm:"autoCreateTime:milli;not null"`
}

func (WorkOrderModel) TableName() string {
	return "work_orders"
}

type InvoiceModel struct {
	ID                  uint   `gorm:"primaryKey"`
	InvoiceNumber       string `gorm:"uniqueIndex;size:50;not null"`
	TicketID            uint   `gorm:"uniqueIndex;not null"`
	MaintenanceVendorID uint   `gorm:"not null;index"`
	OrganizationID      *uint  `gorm:"index"`
	WorkOrderIDs        datatypes.JSON
	Subtotal            float64 `gorm:"not null"`
	Tax                 float64 `gorm:"not null;default:0"`
	Discount            float64 `gorm:"not null;default:0"`
	Total               float64 `gorm:"not null"`
	Notes               string  `gorm:"type:text"`
	Status              string  `gorm:"size:20;not null;index"`
	PaymentMethod       string  `gorm:"size:50"`
	PaymentType         string  `gorm:"size:50"`
	CheckNumber         string  `gorm:"size:50"`
	IssuedAt            int64   `gorm:"not null"`
	PaidAt              *int64
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}
