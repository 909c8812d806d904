package models

import "gorm.io/datatypes"

type BidModel struct {
	ID                  uint    `gorm:"primaryKey"`
	TicketID            uint    `gorm:"not null;index:idx_bid_ticket_vendor"`
	MaintenanceVendorID uint    `gorm:"not null;index:idx_bid_ticket_vendor"`
	HourlyRate          float64 `gorm:"not null"`
	EstimatedHours      float64 `gorm:"not null"`
	Parts               datatypes.JSON
	TotalAmount         float64 `gorm:"not null"`
	Notes               string  `gorm:"type:text"`
	Status              string  `gorm:"size:20;not null;index"`
	Approved            bool    `gorm:"not null;default:false"`
	CounterOffer        *float64
	CounterNotes        string `gorm:"type:text"`
	RejectionReason     string `gorm:"type:text"`
	Version             int    `gorm:"not null;default:1"`
	PreviousBidID       *uint  `gorm:"index"`
	SupersededByBidID   *uint
	IsSuperseded        bool  `gorm:"not null;default:false;index"`
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (BidModel) TableName() string {
	return "marketplace_bids"
}
