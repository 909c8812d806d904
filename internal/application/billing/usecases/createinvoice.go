package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/billing/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/billing"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type CreateInvoiceCommand struct {
	Actor    access.Actor
	TicketID uint
	Tax      float64
	Discount float64
	Notes    string
}

type CreateInvoiceResult struct {
	Invoice *dto.InvoiceDTO
}

// CreateInvoiceUseCase bills a completed ticket. The invoice freezes the
// ticket's full set of work orders at issue time and the ticket transitions
// to billed in the same transaction, so a ticket can never be invoiced twice.
type CreateInvoiceUseCase struct {
	ticketRepo    ticket.TicketRepository
	milestoneRepo ticket.MilestoneRepository
	workOrderRepo billing.WorkOrderRepository
	invoiceRepo   billing.InvoiceRepository
	numberGen     billing.InvoiceNumberGenerator
	txManager     TransactionManager
	publisher     events.Publisher
	logger        logger.Interface
}

func NewCreateInvoiceUseCase(
	ticketRepo ticket.TicketRepository,
	milestoneRepo ticket.MilestoneRepository,
	workOrderRepo billing.WorkOrderRepository,
	invoiceRepo billing.InvoiceRepository,
	numberGen billing.InvoiceNumberGenerator,
	txManager TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		ticketRepo:    ticketRepo,
		milestoneRepo: milestoneRepo,
		workOrderRepo: workOrderRepo,
		invoiceRepo:   invoiceRepo,
		numberGen:     numberGen,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, cmd CreateInvoiceCommand) (*CreateInvoiceResult, error) {
	uc.logger.Infow("executing create invoice use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Tax < 0 || cmd.Discount < 0 {
		return nil, errors.NewValidationError("tax and discount cannot be negative")
	}

	var (
		t         *ticket.Ticket
		inv       *billing.Invoice
		oldStatus tvo.TicketStatus
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		caps := access.ResolveCapabilities(cmd.Actor, t)
		if !caps.CanInvoice || !(cmd.Actor.Role.IsMaintenanceAdmin() || cmd.Actor.Role.IsRoot()) {
			return errors.NewForbiddenError("caller may not invoice this ticket")
		}
		if !t.Status().IsReadyForBilling() {
			return errors.NewValidationError("ticket is not ready for billing")
		}
		if t.MaintenanceVendorID() == nil {
			return errors.NewValidationError("ticket has no assigned vendor")
		}

		if existing, err := uc.invoiceRepo.GetByTicketID(txCtx, t.ID()); err == nil && existing != nil {
			return errors.NewConflictError(fmt.Sprintf("ticket %d is already invoiced", t.ID()))
		} else if err != nil && !errors.IsNotFoundError(err) {
			return err
		}

		workOrders, err := uc.workOrderRepo.GetByTicketID(txCtx, t.ID())
		if err != nil {
			return err
		}
		if len(workOrders) == 0 {
			return errors.NewValidationError("ticket has no work orders to bill")
		}

		number, err := uc.numberGen.Generate(txCtx)
		if err != nil {
			return err
		}

		inv, err = billing.NewInvoice(number, t.ID(), *t.MaintenanceVendorID(), t.OrganizationID(), workOrders, cmd.Tax, cmd.Discount, cmd.Notes)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.invoiceRepo.Save(txCtx, inv); err != nil {
			return err
		}

		oldStatus = t.Status()
		if err := t.MarkBilled(); err != nil {
			return errors.NewValidationError(err.Error())
		}

		milestone, err := ticket.NewMilestone(t.ID(), ticket.MilestoneInvoiced, cmd.Actor.UserID,
			fmt.Sprintf("invoice %s issued", number))
		if err != nil {
			return err
		}
		if err := uc.milestoneRepo.Save(txCtx, milestone); err != nil {
			return err
		}

		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to create invoice", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create invoice")
	}

	uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus, cmd.Actor.UserID))
	uc.logger.Infow("invoice created", "invoice_id", inv.ID(), "invoice_number", inv.InvoiceNumber(), "ticket_id", t.ID(), "total", inv.Total())
	return &CreateInvoiceResult{Invoice: dto.InvoiceToDTO(inv)}, nil
}
