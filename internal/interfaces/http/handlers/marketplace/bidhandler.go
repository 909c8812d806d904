package marketplace

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixwise/internal/application/marketplace/usecases"
	"fixwise/internal/interfaces/http/middleware"
	"fixwise/internal/shared/errors"
	"fixwise/internal/shared/logger"
	"fixwise/internal/shared/utils"
)

type BidHandler struct {
	submitBidUC  usecases.SubmitBidExecutor
	counterBidUC usecases.CounterBidExecutor
	acceptBidUC  usecases.AcceptBidExecutor
	rejectBidUC  usecases.RejectBidExecutor
	listBidsUC   usecases.ListBidsExecutor
	logger       logger.Interface
}

func NewBidHandler(
	submitBidUC usecases.SubmitBidExecutor,
	counterBidUC usecases.CounterBidExecutor,
	acceptBidUC usecases.AcceptBidExecutor,
	rejectBidUC usecases.RejectBidExecutor,
	listBidsUC usecases.ListBidsExecutor,
) *BidHandler {
	return &BidHandler{
		submitBidUC:  submitBidUC,
		counterBidUC: counterBidUC,
		acceptBidUC:  acceptBidUC,
		rejectBidUC:  rejectBidUC,
		listBidsUC:   listBidsUC,
		logger:       logger.NewLogger(),
	}
}

// SubmitBid handles POST /marketplace/bids
func (h *BidHandler) SubmitBid(c *gin.Context) {
	var req SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit bid", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.submitBidUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Bid, "Bid submitted successfully")
}

// ListBids handles GET /marketplace/bids
func (h *BidHandler) ListBids(c *gin.Context) {
	ticketID, err := utils.ParseQueryUint(c, "ticket_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if ticketID == nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("ticket_id is required"))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	cmd := usecases.ListBidsCommand{
		Actor:      actor,
		TicketID:   *ticketID,
		ActiveOnly: c.Query("active_only") == "true",
	}

	result, err := h.listBidsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bids retrieved successfully", result.Bids)
}

// AcceptBid handles POST /marketplace/bids/:id/accept
func (h *BidHandler) AcceptBid(c *gin.Context) {
	bidID, err := utils.ParseIDParam(c, "id", "bid")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AcceptBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for accept bid", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	cmd := usecases.AcceptBidCommand{Actor: actor, TicketID: req.TicketID, BidID: bidID}
	result, err := h.acceptBidUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bid accepted successfully", result.Bid)
}

// CounterBid handles POST /marketplace/bids/:id/counter
func (h *BidHandler) CounterBid(c *gin.Context) {
	bidID, err := utils.ParseIDParam(c, "id", "bid")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CounterBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for counter bid", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	cmd := usecases.CounterBidCommand{
		Actor:    actor,
		TicketID: req.TicketID,
		BidID:    bidID,
		Offer:    req.Offer,
		Notes:    req.Notes,
	}

	result, err := h.counterBidUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Counter-offer recorded successfully", result.Bid)
}

// RejectBid handles POST /marketplace/bids/:id/reject
func (h *BidHandler) RejectBid(c *gin.Context) {
	bidID, err := utils.ParseIDParam(c, "id", "bid")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reject bid", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	cmd := usecases.RejectBidCommand{
		Actor:    actor,
		TicketID: req.TicketID,
		BidID:    bidID,
		Reason:   req.Reason,
	}

	result, err := h.rejectBidUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Bid rejected successfully", result.Bid)
}
