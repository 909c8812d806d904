package usecases

import (
	"context"
	"fmt"

	"fixwise/internal/application/billing/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/billing"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type PayInvoiceCommand struct {
	Actor         access.Actor
	InvoiceID     uint
	PaymentMethod string
	PaymentType   string
	CheckNumber   string
}

type PayInvoiceResult struct {
	Invoice *dto.InvoiceDTO
}

type PayInvoiceUseCase struct {
	invoiceRepo billing.InvoiceRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewPayInvoiceUseCase(
	invoiceRepo billing.InvoiceRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *PayInvoiceUseCase {
	return &PayInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *PayInvoiceUseCase) Execute(ctx context.Context, cmd PayInvoiceCommand) (*PayInvoiceResult, error) {
	uc.logger.Infow("executing pay invoice use case", "invoice_id", cmd.InvoiceID, "actor_id", cmd.Actor.UserID)

	if cmd.InvoiceID == 0 {
		return nil, errors.NewValidationError("invoice ID is required")
	}
	if cmd.PaymentMethod == "" {
		return nil, errors.NewValidationError("payment method is required")
	}

	var inv *billing.Invoice
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		inv, err = uc.invoiceRepo.GetByID(txCtx, cmd.InvoiceID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("invoice %d not found", cmd.InvoiceID))
		}
		if !canPayInvoice(cmd.Actor, inv) {
			return errors.NewForbiddenError("caller may not pay this invoice")
		}
		if err := inv.MarkPaid(cmd.PaymentMethod, cmd.PaymentType, cmd.CheckNumber); err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.invoiceRepo.Update(txCtx, inv)
	})
	if err != nil {
		uc.logger.Errorw("failed to pay invoice", "invoice_id", cmd.InvoiceID, "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to pay invoice")
	}

	uc.logger.Infow("invoice paid", "invoice_id", inv.ID(), "invoice_number", inv.InvoiceNumber())
	return &PayInvoiceResult{Invoice: dto.InvoiceToDTO(inv)}, nil
}
