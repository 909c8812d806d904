package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/marketplace/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/marketplace"
	"fixwise/internal/domain/ticket"
	"fixwise/internal/domain/vendorentity"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type SubmitBidCommand struct {
	Actor          access.Actor
	TicketID       uint
	HourlyRate     float64
	EstimatedHours float64
	Parts          []marketplace.BidPart
	TotalAmount    float64
	Notes          string
}

type SubmitBidResult struct {
	Bid *dto.BidDTO
}

// SubmitBidUseCase places or resubmits a vendor's bid on a marketplace
// ticket. A resubmission versions the chain: the new bid links back to the
// old one and the old one is marked superseded in the same transaction.
type SubmitBidUseCase struct {
	ticketRepo ticket.TicketRepository
	bidRepo    marketplace.BidRepository
	tierRepo   vendor.TierRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewSubmitBidUseCase(
	ticketRepo ticket.TicketRepository,
	bidRepo marketplace.BidRepository,
	tierRepo vendor.TierRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *SubmitBidUseCase {
	return &SubmitBidUseCase{
		ticketRepo: ticketRepo,
		bidRepo:    bidRepo,
		tierRepo:   tierRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *SubmitBidUseCase) Execute(ctx context.Context, cmd SubmitBidCommand) (*SubmitBidResult, error) {
	uc.logger.Infow("executing submit bid use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.Actor.Role.IsMaintenanceAdmin() || cmd.Actor.MaintenanceVendorID == nil {
		return nil, errors.NewForbiddenError("only maintenance vendor admins can bid")
	}
	vendorID := *cmd.Actor.MaintenanceVendorID

	var bid *marketplace.Bid
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}
		if !t.Status().IsMarketplace() {
			return errors.NewValidationError("ticket is not listed on the marketplace")
		}

		if err := uc.checkEligibility(txCtx, vendorID, t.OrganizationID()); err != nil {
			return err
		}

		previous, err := uc.bidRepo.GetActiveByTicketAndVendor(txCtx, cmd.TicketID, vendorID)
		if err != nil && !errors.IsNotFoundError(err) {
			return err
		}

		if previous != nil {
			bid, err = previous.NewRevision(cmd.HourlyRate, cmd.EstimatedHours, cmd.Parts, cmd.TotalAmount, cmd.Notes)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.bidRepo.Save(txCtx, bid); err != nil {
				return err
			}
			if err := previous.MarkSuperseded(bid.ID()); err != nil {
				return errors.NewValidationError(err.Error())
			}
			return uc.bidRepo.Update(txCtx, previous)
		}

		bid, err = marketplace.NewBid(cmd.TicketID, vendorID, cmd.HourlyRate, cmd.EstimatedHours, cmd.Parts, cmd.TotalAmount, cmd.Notes)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.bidRepo.Save(txCtx, bid)
	})
	if err != nil {
		uc.logger.Errorw("failed to submit bid", "ticket_id", cmd.TicketID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to submit bid")
	}

	uc.logger.Infow("bid submitted", "bid_id", bid.ID(), "ticket_id", cmd.TicketID, "version", bid.Version())
	return &SubmitBidResult{Bid: dto.BidToDTO(bid)}, nil
}

// checkEligibility requires an active marketplace tier with the ticket's
// organization. Residential tickets carry no organization; any active
// marketplace tier on the platform qualifies there.
func (uc *SubmitBidUseCase) checkEligibility(ctx context.Context, vendorID uint, orgID *uint) error {
	if orgID == nil {
		eligible, err := uc.tierRepo.HasActiveMarketplaceTier(ctx, vendorID)
		if err != nil {
			uc.logger.Errorw("failed to check marketplace eligibility", "vendor_id", vendorID, "error", err)
			return errors.NewInternalError("failed to check marketplace eligibility")
		}
		if !eligible {
			return errors.NewForbiddenError("vendor holds no active marketplace tier")
		}
		return nil
	}

	tier, err := uc.tierRepo.GetActive(ctx, vendorID, *orgID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewForbiddenError("vendor has no active marketplace tier with this organization")
		}
		uc.logger.Errorw("failed to check marketplace eligibility", "vendor_id", vendorID, "organization_id", *orgID, "error", err)
		return errors.NewInternalError("failed to check marketplace eligibility")
	}
	if tier == nil || !tier.AllowsMarketplaceBidding() {
		return errors.NewForbiddenError("vendor has no active marketplace tier with this organization")
	}
	return nil
}
