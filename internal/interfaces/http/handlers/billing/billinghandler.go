package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixwise/internal/application/billing/usecases"
	"fixwise/internal/interfaces/http/middleware"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
	"fixwise/internal/shared/utils"
)

type BillingHandler struct {
	createInvoiceUC  usecases.CreateInvoiceExecutor
	payInvoiceUC     usecases.PayInvoiceExecutor
	getInvoiceUC     usecases.GetInvoiceExecutor
	listInvoicesUC   usecases.ListInvoicesExecutor
	listWorkOrdersUC usecases.ListWorkOrdersExecutor
	logger           logger.Interface
}

func NewBillingHandler(
	createInvoiceUC usecases.CreateInvoiceExecutor,
	payInvoiceUC usecases.PayInvoiceExecutor,
	getInvoiceUC usecases.GetInvoiceExecutor,
	listInvoicesUC usecases.ListInvoicesExecutor,
	listWorkOrdersUC usecases.ListWorkOrdersExecutor,
) *BillingHandler {
	return &BillingHandler{
		createInvoiceUC:  createInvoiceUC,
		payInvoiceUC:     payInvoiceUC,
		getInvoiceUC:     getInvoiceUC,
		listInvoicesUC:   listInvoicesUC,
		listWorkOrdersUC: listWorkOrdersUC,
		logger:           logger.NewLogger(),
	}
}

// CreateInvoice handles POST /invoices
func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create invoice", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.createInvoiceUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Invoice, "Invoice created successfully")
}

// ListWorkOrders handles GET /tickets/:id/work-orders
func (h *BillingHandler) ListWorkOrders(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	query := usecases.ListWorkOrdersQuery{Actor: actor, TicketID: ticketID}
	workOrders, err := h.listWorkOrdersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work orders retrieved successfully", workOrders)
}

// GetInvoice handles GET /invoices/:id
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	invoiceID, err := utils.ParseIDParam(c, "id", "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	invoice, err := h.getInvoiceUC.Execute(c.Request.Context(), usecases.GetInvoiceQuery{Actor: actor, InvoiceID: invoiceID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoice retrieved successfully", invoice)
}

// ListInvoices handles GET /invoices
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	pagination := utils.ParsePagination(c)
	query := usecases.ListInvoicesQuery{
		Actor:    actor,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}

	result, err := h.listInvoicesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Invoices, result.Total, result.Page, result.PageSize)
}

// PayInvoice handles POST /invoices/:id/pay
func (h *BillingHandler) PayInvoice(c *gin.Context) {
	invoiceID, err := utils.ParseIDParam(c, "id", "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PayInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for pay invoice", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.payInvoiceUC.Execute(c.Request.Context(), req.ToCommand(actor, invoiceID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoice paid successfully", result.Invoice)
}
