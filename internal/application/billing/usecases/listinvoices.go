package usecases

import (
	"context"

	"fixwise/internal/application/billing/dto"
	"fixwise/internal/domain/access"
	"fixwise/internal/domain/billing"
	vo "fixwise/internal/domain/user/valueobjects"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
)

type ListInvoicesQuery struct {
	Actor    access.Actor
	Status   *string
	Page     int
	PageSize int
}

type ListInvoicesResult struct {
	Invoices []*dto.InvoiceDTO
	Total    int64
	Page     int
	PageSize int
}

// ListInvoicesUseCase lists invoices inside the caller's scope: the issuing
// vendor sees what it billed, the organization sees what it owes, root sees
// everything.
type ListInvoicesUseCase struct {
	invoiceRepo billing.InvoiceRepository
	logger      logger.Interface
}

func NewListInvoicesUseCase(invoiceRepo billing.InvoiceRepository, logger logger.Interface) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

func (uc *ListInvoicesUseCase) Execute(ctx context.Context, query ListInvoicesQuery) (*ListInvoicesResult, error) {
	filters := billing.InvoiceFilter{
		Status:   query.Status,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.PageSize <= 0 || filters.PageSize > 100 {
		filters.PageSize = 20
	}

	switch query.Actor.Role {
	case vo.RoleRoot:
		// Unscoped.
	case vo.RoleOrgAdmin:
		if query.Actor.OrganizationID == nil {
			return nil, errors.NewForbiddenError("caller has no organization scope")
		}
		filters.OrganizationID = query.Actor.OrganizationID
	case vo.RoleOrgSubadmin:
		if query.Actor.OrganizationID == nil ||
			!(query.Actor.HasPermission(vo.PermissionViewInvoices) || query.Actor.HasPermission(vo.PermissionPayInvoices)) {
			return nil, errors.NewForbiddenError("caller may not view invoices")
		}
		filters.OrganizationID = query.Actor.OrganizationID
	case vo.RoleMaintenanceAdmin:
		if query.Actor.MaintenanceVendorID == nil {
			return nil, errors.NewForbiddenError("caller has no vendor scope")
		}
		filters.MaintenanceVendorID = query.Actor.MaintenanceVendorID
	default:
		return nil, errors.NewForbiddenError("caller may not view invoices")
	}

	invoices, total, err := uc.invoiceRepo.List(ctx, filters)
	if err != nil {
		uc.logger.Errorw("failed to list invoices", "error", err)
		return nil, errors.NewInternalError("failed to list invoices")
	}

	dtos := make([]*dto.InvoiceDTO, 0, len(invoices))
	for _, inv := range invoices {
		dtos = append(dtos, dto.InvoiceToDTO(inv))
	}
	return &ListInvoicesResult{
		Invoices: dtos,
		Total:    total,
		Page:     filters.Page,
		PageSize: filters.PageSize,
	}, nil
}
