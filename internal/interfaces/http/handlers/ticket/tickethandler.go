package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixwise/internal/application/ticket/usecases"
	"fixwise/internal/interfaces/http/middleware"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
	"fixwise/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC      usecases.CreateTicketExecutor
	getTicketUC         usecases.GetTicketExecutor
	listTicketsUC       usecases.ListTicketsExecutor
	updateTicketUC      usecases.UpdateTicketExecutor
	acceptTicketUC      usecases.AcceptTicketExecutor
	rejectTicketUC      usecases.RejectTicketExecutor
	sendToMarketplaceUC usecases.SendToMarketplaceExecutor
	startWorkUC         usecases.StartWorkExecutor
	completeWorkUC      usecases.CompleteWorkExecutor
	confirmCompletionUC usecases.ConfirmCompletionExecutor
	forceCloseUC        usecases.ForceCloseExecutor
	addCommentUC        usecases.AddCommentExecutor
	listCommentsUC      usecases.ListCommentsExecutor
	listMilestonesUC    usecases.ListMilestonesExecutor
	logger              logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	acceptTicketUC usecases.AcceptTicketExecutor,
	rejectTicketUC usecases.RejectTicketExecutor,
	sendToMarketplaceUC usecases.SendToMarketplaceExecutor,
	startWorkUC usecases.StartWorkExecutor,
	completeWorkUC usecases.CompleteWorkExecutor,
	confirmCompletionUC usecases.ConfirmCompletionExecutor,
	forceCloseUC usecases.ForceCloseExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	listMilestonesUC usecases.ListMilestonesExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:      createTicketUC,
		getTicketUC:         getTicketUC,
		listTicketsUC:       listTicketsUC,
		updateTicketUC:      updateTicketUC,
		acceptTicketUC:      acceptTicketUC,
		rejectTicketUC:      rejectTicketUC,
		sendToMarketplaceUC: sendToMarketplaceUC,
		startWorkUC:         startWorkUC,
		completeWorkUC:      completeWorkUC,
		confirmCompletionUC: confirmCompletionUC,
		forceCloseUC:        forceCloseUC,
		addCommentUC:        addCommentUC,
		listCommentsUC:      listCommentsUC,
		listMilestonesUC:    listMilestonesUC,
		logger:              logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Ticket, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
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

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Actor:       actor,
		TicketID:    ticketID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Images:      req.Images,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result.Ticket)
}

// AcceptTicket handles POST /tickets/:id/accept
func (h *TicketHandler) AcceptTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AcceptTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	if req.Marketplace {
		if req.MaintenanceVendorID != nil || req.AssigneeID != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("marketplace and direct assignment are mutually exclusive"))
			return
		}
		result, err := h.sendToMarketplaceUC.Execute(c.Request.Context(), usecases.SendToMarketplaceCommand{
			Actor:    actor,
			TicketID: ticketID,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Ticket listed on marketplace", result.Ticket)
		return
	}

	result, err := h.acceptTicketUC.Execute(c.Request.Context(), usecases.AcceptTicketCommand{
		Actor:               actor,
		TicketID:            ticketID,
		MaintenanceVendorID: req.MaintenanceVendorID,
		AssigneeID:          req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket accepted", result.Ticket)
}

// RejectTicket handles POST /tickets/:id/reject
func (h *TicketHandler) RejectTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.rejectTicketUC.Execute(c.Request.Context(), usecases.RejectTicketCommand{
		Actor:           actor,
		TicketID:        ticketID,
		RejectionReason: req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket rejected", result.Ticket)
}

// SendToMarketplace handles POST /tickets/:id/marketplace
func (h *TicketHandler) SendToMarketplace(c *gin.Context) {
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

	result, err := h.sendToMarketplaceUC.Execute(c.Request.Context(), usecases.SendToMarketplaceCommand{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket listed on marketplace", result.Ticket)
}

// StartWork handles POST /tickets/:id/start
func (h *TicketHandler) StartWork(c *gin.Context) {
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

	result, err := h.startWorkUC.Execute(c.Request.Context(), usecases.StartWorkCommand{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work started", result.Ticket)
}

// CompleteWork handles POST /tickets/:id/complete
func (h *TicketHandler) CompleteWork(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.completeWorkUC.Execute(c.Request.Context(), req.ToCommand(actor, ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Work order recorded", result)
}

// ConfirmCompletion handles POST /tickets/:id/confirm
func (h *TicketHandler) ConfirmCompletion(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ConfirmCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.confirmCompletionUC.Execute(c.Request.Context(), usecases.ConfirmCompletionCommand{
		Actor:     actor,
		TicketID:  ticketID,
		Confirmed: req.Confirmed,
		Feedback:  req.Feedback,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Completion recorded", result.Ticket)
}

// ForceClose handles POST /tickets/:id/force-close
func (h *TicketHandler) ForceClose(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ForceCloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.forceCloseUC.Execute(c.Request.Context(), usecases.ForceCloseCommand{
		Actor:    actor,
		TicketID: ticketID,
		Reason:   req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket force closed", result.Ticket)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:    actor,
		TicketID: ticketID,
		Content:  req.Content,
		Images:   req.Images,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Comment, "Comment added")
}

// ListComments handles GET /tickets/:id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
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

	comments, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", comments)
}

// ListMilestones handles GET /tickets/:id/milestones
func (h *TicketHandler) ListMilestones(c *gin.Context) {
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

	milestones, err := h.listMilestonesUC.Execute(c.Request.Context(), usecases.ListMilestonesQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", milestones)
}
