package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fixwise/internal/application/ticket/usecases"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/billing"
	"fixwise/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title             string   `json:"title" binding:"required,max=200"`
	Description       string   `json:"description" binding:"required,max=5000"`
	Priority          string   `json:"priority" binding:"required"`
	OrganizationID    *uint    `json:"organization_id,omitempty"`
	LocationID        *uint    `json:"location_id,omitempty"`
	ResidentialStreet string   `json:"residential_street,omitempty"`
	ResidentialCity   string   `json:"residential_city,omitempty"`
	ResidentialZip    string   `json:"residential_zip,omitempty"`
	Images            []string `json:"images,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(actor access.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:             actor,
		Title:             r.Title,
		Description:       r.Description,
		Priority:          r.Priority,
		OrganizationID:    r.OrganizationID,
		LocationID:        r.LocationID,
		ResidentialStreet: r.ResidentialStreet,
		ResidentialCity:   r.ResidentialCity,
		ResidentialZip:    r.ResidentialZip,
		Images:            r.Images,
	}
}

type UpdateTicketRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type AcceptTicketRequest struct {
	MaintenanceVendorID *uint `json:"maintenance_vendor_id,omitempty"`
	AssigneeID          *uint `json:"assignee_id,omitempty"`
	// Marketplace routes the accept decision to the open marketplace
	// instead of a direct vendor assignment.
	Marketplace bool `json:"marketplace,omitempty"`
}

type RejectTicketRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type CompleteWorkRequest struct {
	Description      string                `json:"description" binding:"required,max=5000"`
	Parts            []billing.Part        `json:"parts,omitempty"`
	OtherCharges     []billing.OtherCharge `json:"other_charges,omitempty"`
	TimeIn           string                `json:"time_in" binding:"required"`
	TimeOut          string                `json:"time_out" binding:"required"`
	CompletionStatus string                `json:"completion_status" binding:"required"`
}

func (r *CompleteWorkRequest) ToCommand(actor access.Actor, ticketID uint) usecases.CompleteWorkCommand {
	return usecases.CompleteWorkCommand{
		Actor:    actor,
		TicketID: ticketID,
		WorkOrder: usecases.WorkOrderInput{
			Description:      r.Description,
			Parts:            r.Parts,
			OtherCharges:     r.OtherCharges,
			TimeIn:           r.TimeIn,
			TimeOut:          r.TimeOut,
			CompletionStatus: r.CompletionStatus,
		},
	}
}

type ConfirmCompletionRequest struct {
	Confirmed bool   `json:"confirmed"`
	Feedback  string `json:"feedback,omitempty"`
}

type ForceCloseRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type AddCommentRequest struct {
	Content string   `json:"content" binding:"required,max=5000"`
	Images  []string `json:"images,omitempty"`
}

type ListTicketsRequest struct {
	Page                int    `json:"page"`
	PageSize            int    `json:"page_size"`
	Status              string `json:"status" validate:"omitempty,oneof=pending accepted rejected marketplace in-progress return_needed pending_confirmation ready_for_billing billed force_closed"`
	Priority            string `json:"priority" validate:"omitempty,oneof=low medium high"`
	OrganizationID      *uint  `json:"organization_id"`
	MaintenanceVendorID *uint  `json:"maintenance_vendor_id"`
}

func (r *ListTicketsRequest) ToQuery(actor access.Actor) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Actor:               actor,
		Status:              r.Status,
		Priority:            r.Priority,
		OrganizationID:      r.OrganizationID,
		MaintenanceVendorID: r.MaintenanceVendorID,
		Page:                r.Page,
		PageSize:            r.PageSize,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}

	if raw := c.Query("organization_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			orgID := uint(id)
			req.OrganizationID = &orgID
		}
	}
	if raw := c.Query("maintenance_vendor_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			vendorID := uint(id)
			req.MaintenanceVendorID = &vendorID
		}
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	return req, nil
}
