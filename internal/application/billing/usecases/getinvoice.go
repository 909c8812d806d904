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

type GetInvoiceQuery struct {
	Actor     access.Actor
	InvoiceID uint
}

type GetInvoiceUseCase struct {
	invoiceRepo billing.InvoiceRepository
	logger      logger.Interface
}

func NewGetInvoiceUseCase(invoiceRepo billing.InvoiceRepository, logger logger.Interface) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

func (uc *GetInvoiceUseCase) Execute(ctx context.Context, query GetInvoiceQuery) (*dto.InvoiceDTO, error) {
	if query.InvoiceID == 0 {
		return nil, errors.NewValidationError("invoice ID is required")
	}

	inv, err := uc.invoiceRepo.GetByID(ctx, query.InvoiceID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %d not found", query.InvoiceID))
	}

	// An out-of-scope invoice reads as absent rather than forbidden.
	if !canViewInvoice(query.Actor, inv) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %d not found", query.InvoiceID))
	}

	return dto.InvoiceToDTO(inv), nil
}
