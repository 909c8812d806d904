package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"fixwise/internal/domain/billing"
	vo "fixwise/internal/domain/billing/valueobjects"
	"fixwise/internal/infrastructure/persistence/models"
)

type BillingMapper interface {
	WorkOrderToModel(wo *billing.WorkOrder) *models.WorkOrderModel
	WorkOrderToDomain(model *models.WorkOrderModel) (*billing.WorkOrder, error)
	InvoiceToModel(inv *billing.Invoice) *models.InvoiceModel
	InvoiceToDomain(model *models.InvoiceModel) (*billing.Invoice, error)
}

type BillingMapperImpl struct{}

func NewBillingMapper() BillingMapper {
	return &BillingMapperImpl{}
}

func (m *BillingMapperImpl) WorkOrderToModel(wo *billing.WorkOrder) *models.WorkOrderModel {
	model := &models.WorkOrderModel{
		ID:               wo.ID(),
		TicketID:         wo.TicketID(),
		TechnicianID:     wo.TechnicianID(),
		WorkOrderNumber:  wo.WorkOrderNumber(),
		Description:      wo.Description(),
		TotalCost:        wo.TotalCost(),
		TimeIn:           wo.TimeIn(),
		TimeOut:          wo.TimeOut(),
		CompletionStatus: wo.CompletionStatus().String(),
		CreatedAt:        wo.CreatedAt().UnixMilli(),
	}

	if parts := wo.Parts(); len(parts) > 0 {
		partsJSON, _ := json.Marshal(parts)
		model.Parts = datatypes.JSON(partsJSON)
	}
	if charges := wo.OtherCharges(); len(charges) > 0 {
		chargesJSON, _ := json.Marshal(charges)
		model.OtherCharges = datatypes.JSON(chargesJSON)
	}

	return model
}

func (m *BillingMapperImpl) WorkOrderToDomain(model *models.WorkOrderModel) (*billing.WorkOrder, error) {
	status, err := vo.NewCompletionStatus(model.CompletionStatus)
	if err != nil {
		return nil, fmt.Errorf("invalid work order completion status (id=%d): %w", model.ID, err)
	}

	var parts []billing.Part
	if len(model.Parts) > 0 {
		if err := json.Unmarshal(model.Parts, &parts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal work order parts (id=%d): %w", model.ID, err)
		}
	}
	var charges []billing.OtherCharge
	if len(model.OtherCharges) > 0 {
		if err := json.Unmarshal(model.OtherCharges, &charges); err != nil {
			return nil, fmt.Errorf("failed to unmarshal work order charges (id=%d): %w", model.ID, err)
		}
	}

	return billing.ReconstructWorkOrder(
		model.ID,
		model.TicketID,
		model.TechnicianID,
		model.WorkOrderNumber,
		model.Description,
		parts,
		charges,
		model.TotalCost,
		model.TimeIn,
		model.TimeOut,
		status,
		millisToTime(model.CreatedAt),
	)
}

func (m *BillingMapperImpl) InvoiceToModel(inv *billing.Invoice) *models.InvoiceModel {
	model := &models.InvoiceModel{
		ID:                  inv.ID(),
		InvoiceNumber:       inv.InvoiceNumber(),
		TicketID:            inv.TicketID(),
		MaintenanceVendorID: inv.MaintenanceVendorID(),
		OrganizationID:      inv.OrganizationID(),
		Subtotal:            inv.Subtotal(),
		Tax:                 inv.Tax(),
		Discount:            inv.Discount(),
		Total:               inv.Total(),
		Notes:               inv.Notes(),
		Status:              inv.Status().String(),
		PaymentMethod:       inv.PaymentMethod(),
		PaymentType:         inv.PaymentType(),
		CheckNumber:         inv.CheckNumber(),
		IssuedAt:            inv.IssuedAt().UnixMilli(),
		PaidAt:              timePtrToMillis(inv.PaidAt()),
		CreatedAt:           inv.CreatedAt().UnixMilli(),
		UpdatedAt:           inv.UpdatedAt().UnixMilli(),
	}

	if ids := inv.WorkOrderIDs(); len(ids) > 0 {
		idsJSON, _ := json.Marshal(ids)
		model.WorkOrderIDs = datatypes.JSON(idsJSON)
	}

	return model
}

func (m *BillingMapperImpl) InvoiceToDomain(model *models.InvoiceModel) (*billing.Invoice, error) {
	status, err := vo.NewInvoiceStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice status (id=%d): %w", model.ID, err)
	}

	var workOrderIDs []uint
	if len(model.WorkOrderIDs) > 0 {
		if err := json.Unmarshal(model.WorkOrderIDs, &workOrderIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal invoice work orders (id=%d): %w", model.ID, err)
		}
	}

	return billing.ReconstructInvoice(
		model.ID,
		model.InvoiceNumber,
		model.TicketID,
		model.MaintenanceVendorID,
		model.OrganizationID,
		workOrderIDs,
		model.Subtotal,
		model.Tax,
		model.Discount,
		model.Total,
		model.Notes,
		status,
		model.PaymentMethod,
		model.PaymentType,
		model.CheckNumber,
		millisToTime(model.IssuedAt),
		millisPtrToTime(model.PaidAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
