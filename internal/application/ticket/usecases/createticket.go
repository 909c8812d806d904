package usecases

import (
	"context"
	"strings"

	"fixwise/internal/application/ticket/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/organization"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	tvo "fixwise/internal/domain/ticket/valueobjects"
	uvo "fixwise/internal/domain/user/valueobjects"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor             access.Actor
	Title             string
	Description       string
	Priority          string
	OrganizationID    *uint
	LocationID        *uint
	ResidentialStreet string
	ResidentialCity   string
	ResidentialZip    string
	Images            []string
}

type CreateTicketResult struct {
	Ticket *dto.TicketDTO
}

type CreateTicketUseCase struct {
	ticketRepo    ticket.TicketRepository
	milestoneRepo ticket.MilestoneRepository
	locationRepo  organization.LocationRepository
	numberGen     ticket.NumberGenerator
	txManager     TransactionManager
	publisher     events.Publisher
	logger        logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	milestoneRepo ticket.MilestoneRepository,
	locationRepo organization.LocationRepository,
	numberGen ticket.NumberGenerator,
	txManager TransactionManager,
	publisher events.Publisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:    ticketRepo,
		milestoneRepo: milestoneRepo,
		locationRepo:  locationRepo,
		numberGen:     numberGen,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "reporter_id", cmd.Actor.UserID, "title", cmd.Title)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority, err := tvo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.LocationID != nil {
		loc, err := uc.locationRepo.GetByID(ctx, *cmd.LocationID)
		if err != nil {
			return nil, errors.NewValidationError("location not found")
		}
		if cmd.OrganizationID == nil || loc.OrganizationID() != *cmd.OrganizationID {
			return nil, errors.NewValidationError("location does not belong to the organization")
		}
	}

	var residential *ticket.ResidentialAddress
	if cmd.Actor.Role.IsResidential() {
		residential = &ticket.ResidentialAddress{
			Street: cmd.ResidentialStreet,
			City:   cmd.ResidentialCity,
			Zip:    cmd.ResidentialZip,
		}
	}

	t, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		priority,
		cmd.Actor.UserID,
		cmd.OrganizationID,
		cmd.LocationID,
		residential,
		cmd.Images,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket aggregate", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket number")
	}
	if err := t.SetTicketNumber(number); err != nil {
		return nil, errors.NewInternalError("failed to set ticket number")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return err
		}
		milestone, err := ticket.NewMilestone(t.ID(), ticket.MilestoneCreated, cmd.Actor.UserID, "")
		if err != nil {
			return err
		}
		return uc.milestoneRepo.Save(txCtx, milestone)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist ticket", "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.publisher.Publish(ticket.NewTicketCreatedEvent(t))

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "ticket_number", t.TicketNumber())
	return &CreateTicketResult{Ticket: dto.TicketToDTO(t)}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.Actor.UserID == 0 {
		return errors.NewValidationError("actor is required")
	}
	if len(strings.TrimSpace(cmd.Title)) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(strings.TrimSpace(cmd.Description)) == 0 {
		return errors.NewValidationError("description is required")
	}

	switch cmd.Actor.Role {
	case uvo.RoleResidential:
		if cmd.ResidentialStreet == "" || cmd.ResidentialCity == "" || cmd.ResidentialZip == "" {
			return errors.NewValidationError("residential address requires street, city and zip")
		}
	case uvo.RoleRoot:
		if cmd.OrganizationID == nil {
			return errors.NewValidationError("organization ID is required")
		}
	case uvo.RoleOrgAdmin, uvo.RoleOrgSubadmin:
		if cmd.Actor.OrganizationID == nil || cmd.OrganizationID == nil || *cmd.Actor.OrganizationID != *cmd.OrganizationID {
			return errors.NewForbiddenError("cannot report tickets for another organization")
		}
		if cmd.Actor.Role.IsOrgSubadmin() {
			if !cmd.Actor.HasPermission(uvo.PermissionPlaceTicket) {
				return errors.NewForbiddenError("place_ticket permission required")
			}
			if cmd.LocationID != nil && !cmd.Actor.HasLocation(*cmd.LocationID) {
				return errors.NewForbiddenError("location is outside the caller's assigned set")
			}
		}
	default:
		return errors.NewForbiddenError("role cannot report tickets")
	}

	return nil
}
