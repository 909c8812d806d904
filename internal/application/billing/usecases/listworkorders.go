package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/billing/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/billing"
	"fixwise/internal/domain/ticket"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type ListWorkOrdersQuery struct {
	Actor    access.Actor
	TicketID uint
}

// ListWorkOrdersUseCase returns a ticket's work orders to anyone who can
// view the ticket itself.
type ListWorkOrdersUseCase struct {
	ticketRepo    ticket.TicketRepository
	workOrderRepo billing.WorkOrderRepository
	logger        logger.Interface
}

func NewListWorkOrdersUseCase(
	ticketRepo ticket.TicketRepository,
	workOrderRepo billing.WorkOrderRepository,
	logger logger.Interface,
) *ListWorkOrdersUseCase {
	return &ListWorkOrdersUseCase{
		ticketRepo:    ticketRepo,
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *ListWorkOrdersUseCase) Execute(ctx context.Context, query ListWorkOrdersQuery) ([]*dto.WorkOrderDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}
	caps := access.ResolveCapabilities(query.Actor, t)
	if !caps.CanView {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	workOrders, err := uc.workOrderRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list work orders", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list work orders")
	}

	dtos := make([]*dto.WorkOrderDTO, 0, len(workOrders))
	for _, wo := range workOrders {
		dtos = append(dtos, dto.WorkOrderToDTO(wo))
	}
	return dtos, nil
}
