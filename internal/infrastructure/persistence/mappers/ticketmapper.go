package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"fixwise/internal/domain/ticket"
	vo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	MilestoneToModel(m *ticket.Milestone) *models.MilestoneModel
	MilestoneToDomain(model *models.MilestoneModel) (*ticket.Milestone, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:                   t.ID(),
		Number:               t.TicketNumber(),
		Title:                t.Title(),
		Description:          t.Description(),
		Priority:             t.Priority().String(),
		Status:               t.Status().String(),
		OrganizationID:       t.OrganizationID(),
		ReporterID:           t.ReporterID(),
		AssigneeID:           t.AssigneeID(),
		MaintenanceVendorID:  t.MaintenanceVendorID(),
		LocationID:           t.LocationID(),
		RejectionReason:      t.RejectionReason(),
		ForceCloseReason:     t.ForceCloseReason(),
		ConfirmationFeedback: t.ConfirmationFeedback(),
		RejectionFeedback:    t.RejectionFeedback(),
		ReworkCycles:         t.ReworkCycles(),
		AssignedAt:           timePtrToMillis(t.AssignedAt()),
		StartedAt:            timePtrToMillis(t.StartedAt()),
		CompletedAt:          timePtrToMillis(t.CompletedAt()),
		ConfirmedAt:          timePtrToMillis(t.ConfirmedAt()),
		ForceClosedAt:        timePtrToMillis(t.ForceClosedAt()),
		Version:              t.Version(),
		CreatedAt:            t.CreatedAt().UnixMilli(),
		UpdatedAt:            t.UpdatedAt().UnixMilli(),
	}

	if addr := t.ResidentialAddress(); addr != nil {
		model.ResidentialStreet = addr.Street
		model.ResidentialCity = addr.City
		model.ResidentialZip = addr.Zip
	}

	if images := t.Images(); len(images) > 0 {
		imagesJSON, _ := json.Marshal(images)
		model.Images = datatypes.JSON(imagesJSON)
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket priority (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}

	var images []string
	if len(model.Images) > 0 {
		if err := json.Unmarshal(model.Images, &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket images (id=%d): %w", model.ID, err)
		}
	}

	var residential *ticket.ResidentialAddress
	if model.ResidentialStreet != "" || model.ResidentialCity != "" || model.ResidentialZip != "" {
		residential = &ticket.ResidentialAddress{
			Street: model.ResidentialStreet,
			City:   model.ResidentialCity,
			Zip:    model.ResidentialZip,
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		priority,
		status,
		model.OrganizationID,
		model.ReporterID,
		model.AssigneeID,
		model.MaintenanceVendorID,
		model.LocationID,
		residential,
		images,
		model.RejectionReason,
		model.ForceCloseReason,
		model.ConfirmationFeedback,
		model.RejectionFeedback,
		model.ReworkCycles,
		millisPtrToTime(model.AssignedAt),
		millisPtrToTime(model.StartedAt),
		millisPtrToTime(model.CompletedAt),
		millisPtrToTime(model.ConfirmedAt),
		millisPtrToTime(model.ForceClosedAt),
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	model := &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		IsSystem:  c.IsSystem(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
	if images := c.Images(); len(images) > 0 {
		imagesJSON, _ := json.Marshal(images)
		model.Images = datatypes.JSON(imagesJSON)
	}
	return model
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	var images []string
	if len(model.Images) > 0 {
		if err := json.Unmarshal(model.Images, &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal comment images (id=%d): %w", model.ID, err)
		}
	}
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Content,
		images,
		model.IsSystem,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) MilestoneToModel(ms *ticket.Milestone) *models.MilestoneModel {
	return &models.MilestoneModel{
		ID:        ms.ID(),
		TicketID:  ms.TicketID(),
		Type:      ms.Type().String(),
		ActorID:   ms.ActorID(),
		Note:      ms.Note(),
		CreatedAt: ms.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) MilestoneToDomain(model *models.MilestoneModel) (*ticket.Milestone, error) {
	return ticket.ReconstructMilestone(
		model.ID,
		model.TicketID,
		ticket.MilestoneType(model.Type),
		model.ActorID,
		model.Note,
		millisToTime(model.CreatedAt),
	)
}
