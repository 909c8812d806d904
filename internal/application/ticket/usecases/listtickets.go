package usecases

import (
	"context"

	"fixwise/internal/application/ticket/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	uvo "fixwise/internal/domain/user/valueobjects"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor               access.Actor
	Status              string
	Priority            string
	OrganizationID      *uint
	MaintenanceVendorID *uint
	Page                int
	PageSize            int
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
}

// ListTicketsUseCase narrows the requested filter to the actor's visibility
// scope before querying, so a broad query never leaks another tenant's rows.
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		OrganizationID:      query.OrganizationID,
		MaintenanceVendorID: query.MaintenanceVendorID,
		Page:                query.Page,
		PageSize:            query.PageSize,
	}

	if query.Status != "" {
		status, err := tvo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := tvo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	if err := uc.scopeFilter(&filter, query.Actor); err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	dtos := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, dto.TicketToDTO(t))
	}
	return &ListTicketsResult{Tickets: dtos, Total: total}, nil
}

func (uc *ListTicketsUseCase) scopeFilter(filter *ticket.TicketFilter, actor access.Actor) error {
	switch actor.Role {
	case uvo.RoleRoot:
		// Unscoped.
	case uvo.RoleOrgAdmin:
		if actor.OrganizationID == nil {
			return errors.NewForbiddenError("organization scope required")
		}
		filter.OrganizationID = actor.OrganizationID
	case uvo.RoleOrgSubadmin:
		if actor.OrganizationID == nil {
			return errors.NewForbiddenError("organization scope required")
		}
		filter.OrganizationID = actor.OrganizationID
		filter.LocationIDs = actor.LocationIDs
	case uvo.RoleMaintenanceAdmin:
		if actor.MaintenanceVendorID == nil {
			return errors.NewForbiddenError("vendor scope required")
		}
		filter.MaintenanceVendorID = actor.MaintenanceVendorID
	case uvo.RoleTechnician:
		userID := actor.UserID
		filter.AssigneeID = &userID
	case uvo.RoleResidential:
		userID := actor.UserID
		filter.ReporterID = &userID
	default:
		return errors.NewForbiddenError("unknown role")
	}
	return nil
}
