package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID                   uint   `gorm:"primaryKey"`
	Number               string `gorm:"uniqueIndex;size:50;not null"`
	Title                string `gorm:"size:200;not null"`
	Description          string `gorm:"type:text;not null"`
	Priority             string `gorm:"size:20;not null;index"`
	Status               string `gorm:"size:30;not null;index"`
	OrganizationID       *uint  `gorm:"index"`
	ReporterID           uint   `gorm:"not null;index"`
	AssigneeID           *uint  `gorm:"index"`
	MaintenanceVendorID  *uint  `gorm:"index"`
	LocationID           *uint  `gorm:"index"`
	ResidentialStreet    string `gorm:"size:200"`
	ResidentialCity      string `gorm:"size:100"`
	ResidentialZip       string `gorm:"size:20"`
	Images               datatypes.JSON
	RejectionReason      string `gorm:"type:text"`
	ForceCloseReason     string `gorm:"type:text"`
	ConfirmationFeedback string `gorm:"type:text"`
	RejectionFeedback    string `gorm:"type:text"`
	ReworkCycles         int    `gorm:"not null;default:0"`
	AssignedAt           *int64
	StartedAt            *int64
	CompletedAt          *int64
	ConfirmedAt          *int64
	ForceClosedAt        *int64
	Version              int   `gorm:"not null;default:1"`
	CreatedAt            int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt            int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	Images    datatypes.JSON
	IsSystem  bool  `gorm:"not null;default:false"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type MilestoneModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Type      string `gorm:"size:50;not null"`
	ActorID   uint   `gorm:"not null"`
	Note      string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (MilestoneModel) TableName() string {
	return "ticket_milestones"
}
