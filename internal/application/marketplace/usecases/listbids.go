package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/marketplace/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/marketplace"
	"fixwise/internal/domain/ticket"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type ListBidsCommand struct {
	Actor    access.Actor
	TicketID uint
	// ActiveOnly restricts the listing to non-superseded bids.
	ActiveOnly bool
}

type ListBidsResult struct {
	Bids []*dto.BidDTO
}

// ListBidsUseCase returns the bids on a ticket. The organization side (and
// root) sees every vendor's bids; a vendor admin sees only their own chain.
type ListBidsUseCase struct {
	ticketRepo ticket.TicketRepository
	bidRepo    marketplace.BidRepository
	logger     logger.Interface
}

func NewListBidsUseCase(
	ticketRepo ticket.TicketRepository,
	bidRepo marketplace.BidRepository,
	logger logger.Interface,
) *ListBidsUseCase {
	return &ListBidsUseCase{
		ticketRepo: ticketRepo,
		bidRepo:    bidRepo,
		logger:     logger,
	}
}

func (uc *ListBidsUseCase) Execute(ctx context.Context, cmd ListBidsCommand) (*ListBidsResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	var vendorScope *uint
	switch {
	case cmd.Actor.Role.IsMaintenanceAdmin():
		if cmd.Actor.MaintenanceVendorID == nil {
			return nil, errors.NewForbiddenError("caller may not view bids on this ticket")
		}
		vendorScope = cmd.Actor.MaintenanceVendorID
	default:
		caps := access.ResolveCapabilities(cmd.Actor, t)
		if !caps.CanView {
			return nil, errors.NewForbiddenError("caller may not view bids on this ticket")
		}
	}

	var bids []*marketplace.Bid
	if cmd.ActiveOnly {
		bids, err = uc.bidRepo.GetActiveByTicketID(ctx, t.ID())
	} else {
		bids, err = uc.bidRepo.GetByTicketID(ctx, t.ID())
	}
	if err != nil {
		uc.logger.Errorw("failed to list bids", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list bids")
	}

	dtos := make([]*dto.BidDTO, 0, len(bids))
	for _, b := range bids {
		if vendorScope != nil && b.MaintenanceVendorID() != *vendorScope {
			continue
		}
		dtos = append(dtos, dto.BidToDTO(b))
	}
	return &ListBidsResult{Bids: dtos}, nil
}
