package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/ticket/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/domain/user"
	"fixwise/internal/domain/vendorentity"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

// AcceptTicketCommand carries either a vendor (organization-level acceptance
// of a pending ticket) or an assignee (vendor-level technician dispatch on an
// already accepted ticket). Exactly one must be set.
type AcceptTicketCommand struct {
	Actor               access.Actor
	TicketID            uint
	MaintenanceVendorID *uint
	AssigneeID          *uint
}

type AcceptTicketResult struct {
	Ticket *dto.TicketDTO
}

type AcceptTicketUseCase struct {
	ticketRepo    ticket.TicketRepository
	milestoneRepo ticket.MilestoneRepository
	userRepo      user.UserRepository
	tierRepo      vendor.TierRepository
	txManager     TransactionManager
	publisher     events.Publisher
	logger        logger.Interface
}

func NewAcceptTicketUseCase(
	ticketRepo ticket.TicketRepository,
	milestoneRepo ticket.MilestoneRepository,
	userRepo user.UserRepository,
	tierRepo vendor.TierRepository,
	txManager TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *AcceptTicketUseCase {
	return &AcceptTicketUseCase{
		ticketRepo:    ticketRepo,
		milestoneRepo: milestoneRepo,
		userRepo:      userRepo,
		tierRepo:      tierRepo,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *AcceptTicketUseCase) Execute(ctx context.Context, cmd AcceptTicketCommand) (*AcceptTicketResult, error) {
	uc.logger.Infow("executing accept ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid accept ticket command", "error", err)
		return nil, err
	}

	var (
		t         *ticket.Ticket
		oldStatus tvo.TicketStatus
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		caps := access.ResolveCapabilities(cmd.Actor, t)
		if !caps.CanAccept {
			return errors.NewForbiddenError("caller may not accept this ticket")
		}

		oldStatus = t.Status()

		if cmd.MaintenanceVendorID != nil {
			if err := uc.acceptForOrganization(txCtx, t, *cmd.MaintenanceVendorID); err != nil {
				return err
			}
			milestone, err := ticket.NewMilestone(t.ID(), ticket.MilestoneVendorAssigned, cmd.Actor.UserID, "")
			if err != nil {
				return err
			}
			if err := uc.milestoneRepo.Save(txCtx, milestone); err != nil {
				return err
			}
		} else {
			if err := uc.acceptForVendor(txCtx, t, cmd.Actor, *cmd.AssigneeID); err != nil {
				return err
			}
			milestone, err := ticket.NewMilestone(t.ID(), ticket.MilestoneTechnicianAssigned, cmd.Actor.UserID, "")
			if err != nil {
				return err
			}
			if err := uc.milestoneRepo.Save(txCtx, milestone); err != nil {
				return err
			}
		}

		return uc.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to accept ticket", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to accept ticket")
	}

	if t.Status() != oldStatus {
		uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus, cmd.Actor.UserID))
	}
	if cmd.MaintenanceVendorID != nil {
		uc.publisher.Publish(ticket.NewVendorAssignedEvent(t, *cmd.MaintenanceVendorID))
	} else {
		uc.publisher.Publish(ticket.NewTechnicianAssignedEvent(t, *cmd.AssigneeID))
	}

	uc.logger.Infow("ticket accepted", "ticket_id", t.ID(), "status", t.Status())
	return &AcceptTicketResult{Ticket: dto.TicketToDTO(t)}, nil
}

// acceptForOrganization hands a pending ticket to a vendor. Direct assignment
// requires an active tier_1..3 relation with the ticket's organization;
// marketplace tickets must win through bid acceptance instead.
func (uc *AcceptTicketUseCase) acceptForOrganization(ctx context.Context, t *ticket.Ticket, vendorID uint) error {
	if t.Status().IsMarketplace() {
		return errors.NewValidationError("marketplace tickets are assigned by accepting a bid")
	}

	if t.OrganizationID() != nil {
		tier, err := uc.tierRepo.GetActive(ctx, vendorID, *t.OrganizationID())
		if err != nil {
			return errors.NewForbiddenError("vendor holds no active tier with the ticket's organization")
		}
		if !tier.AllowsDirectAssignment() {
			return errors.NewForbiddenError("vendor's tier does not permit direct assignment")
		}
	}

	if err := t.AssignVendor(vendorID); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

// acceptForVendor dispatches a technician on an already vendor-assigned
// ticket. The assignee must be an active technician of the ticket's vendor.
func (uc *AcceptTicketUseCase) acceptForVendor(ctx context.Context, t *ticket.Ticket, actor access.Actor, assigneeID uint) error {
	assignee, err := uc.userRepo.GetByID(ctx, assigneeID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("assignee %d not found", assigneeID))
	}
	if !assignee.Role().IsTechnician() || !assignee.IsActive() {
		return errors.NewValidationError("assignee must be an active technician")
	}
	if t.MaintenanceVendorID() == nil ||
		assignee.MaintenanceVendorID() == nil ||
		*assignee.MaintenanceVendorID() != *t.MaintenanceVendorID() {
		return errors.NewValidationError("assignee does not belong to the ticket's vendor")
	}

	if err := t.AssignTechnician(assigneeID); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

func (uc *AcceptTicketUseCase) validateCommand(cmd AcceptTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.Actor.UserID == 0 {
		return errors.NewValidationError("actor is required")
	}
	if cmd.MaintenanceVendorID == nil && cmd.AssigneeID == nil {
		return errors.NewValidationError("either a vendor or an assignee is required")
	}
	if cmd.MaintenanceVendorID != nil && cmd.AssigneeID != nil {
		return errors.NewValidationError("vendor and assignee acceptance are distinct operations")
	}
	return nil
}
