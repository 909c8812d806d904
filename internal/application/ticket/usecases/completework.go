package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/ticket/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/billing"
	bvo "fixwise/internal/domain/billing/valueobjects"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

// WorkOrderInput is the technician's documentation of the session. Costs are
// recomputed server-side; client-supplied totals are ignored.
type WorkOrderInput struct {
	Description      string
	Parts            []billing.Part
	OtherCharges     []billing.OtherCharge
	TimeIn           string
	TimeOut          string
	CompletionStatus string
}

type CompleteWorkCommand struct {
	Actor     access.Actor
	TicketID  uint
	WorkOrder WorkOrderInput
}

type CompleteWorkResult struct {
	Ticket      *dto.TicketDTO
	WorkOrderID uint
	TotalCost   float64
	TotalHours  float64
}

// CompleteWorkUseCase records a work order and moves the ticket to
// pending_confirmation or return_needed, atomically.
type CompleteWorkUseCase struct {
	ticketRepo    ticket.TicketRepository
	milestoneRepo ticket.MilestoneRepository
	workOrderRepo billing.WorkOrderRepository
	txManager     TransactionManager
	publisher     events.Publisher
	logger        logger.Interface
}

func NewCompleteWorkUseCase(
	ticketRepo ticket.TicketRepository,
	milestoneRepo ticket.MilestoneRepository,
	workOrderRepo billing.WorkOrderRepository,
	txManager TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *CompleteWorkUseCase {
	return &CompleteWorkUseCase{
		ticketRepo:    ticketRepo,
		milestoneRepo: milestoneRepo,
		workOrderRepo: workOrderRepo,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *CompleteWorkUseCase) Execute(ctx context.Context, cmd CompleteWorkCommand) (*CompleteWorkResult, error) {
	uc.logger.Infow("executing complete work use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Actor.UserID == 0 {
		return nil, errors.NewValidationError("actor is required")
	}

	completionStatus, err := bvo.NewCompletionStatus(cmd.WorkOrder.CompletionStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var (
		t         *ticket.Ticket
		workOrder *billing.WorkOrder
		oldStatus tvo.TicketStatus
	)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		caps := access.ResolveCapabilities(cmd.Actor, t)
		if !caps.CanComplete {
			return errors.NewForbiddenError("caller may not complete work on this ticket")
		}

		count, err := uc.workOrderRepo.CountByTicketID(txCtx, t.ID())
		if err != nil {
			return err
		}

		workOrder, err = billing.NewWorkOrder(
			t.ID(),
			cmd.Actor.UserID,
			count+1,
			cmd.WorkOrder.Description,
			cmd.WorkOrder.Parts,
			cmd.WorkOrder.OtherCharges,
			cmd.WorkOrder.TimeIn,
			cmd.WorkOrder.TimeOut,
			completionStatus,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		oldStatus = t.Status()
		if err := t.CompleteWork(cmd.Actor.UserID, completionStatus.IsCompleted()); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.workOrderRepo.Save(txCtx, workOrder); err != nil {
			return err
		}

		milestoneType := ticket.MilestoneWorkCompleted
		if !completionStatus.IsCompleted() {
			milestoneType = ticket.MilestoneReturnNeeded
		}
		milestone, err := ticket.NewMilestone(t.ID(), milestoneType, cmd.Actor.UserID, "")
		if err != nil {
			return err
		}
		if err := uc.milestoneRepo.Save(txCtx, milestone); err != nil {
			return err
		}

		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to complete work", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to complete work")
	}

	uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus, cmd.Actor.UserID))
	uc.publisher.Publish(ticket.NewWorkCompletedEvent(t, cmd.Actor.UserID, completionStatus.IsCompleted()))

	uc.logger.Infow("work completed",
		"ticket_id", t.ID(),
		"work_order_id", workOrder.ID(),
		"total_cost", workOrder.TotalCost(),
		"status", t.Status(),
	)
	return &CompleteWorkResult{
		Ticket:      dto.TicketToDTO(t),
		WorkOrderID: workOrder.ID(),
		TotalCost:   workOrder.TotalCost(),
		TotalHours:  workOrder.TotalHours(),
	}, nil
}
