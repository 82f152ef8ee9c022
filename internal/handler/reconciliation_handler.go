package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crane-recon/internal/domain"
	"crane-recon/internal/service"
	"crane-recon/pkg/logger"
	"crane-recon/pkg/response"
)

type ReconciliationHandler struct {
	service service.ReconciliationService
}

func NewReconciliationHandler(service service.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{service: service}
}

// RegisterRoutes mounts the matching endpoints on the v1 group
func (h *ReconciliationHandler) RegisterRoutes(v1 *gin.RouterGroup) {
	transactions := v1.Group("/bank-transactions")
	{
		transactions.GET("", h.ListTransactions)
		transactions.POST("/:id/unmatch", h.Unmatch)
	}

	payments := v1.Group("/payments")
	{
		payments.GET("", h.ListPayments)
		payments.POST("/:id/confirm", h.ConfirmPayment)
	}

	reconciliation := v1.Group("/reconcile")
	{
		reconciliation.GET("/suggestions", h.Suggestions)
		reconciliation.GET("/summary", h.Summary)
		reconciliation.POST("/proposals", h.Propose)
		reconciliation.POST("/proposals/:proposal_id/confirm", h.ConfirmProposal)
		reconciliation.DELETE("/proposals/:proposal_id", h.CancelProposal)
	}
}

type ProposeRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	PaymentID     string `json:"payment_id" binding:"required"`
}

// ListTransactions godoc
// @Summary List bank transactions
// @Description List imported bank transactions flagged with whether a pending payment is within tolerance
// @Tags reconciliation
// @Produce json
// @Param filter query string false "all, pending, credit or debit"
// @Param q query string false "Search in description and reference"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/bank-transactions [get]
func (h *ReconciliationHandler) ListTransactions(c *gin.Context) {
	filter, ok := domain.ParseTransactionFilter(c.Query("filter"))
	if !ok {
		response.BadRequest(c, "Invalid filter", "Use all, pending, credit or debit")
		return
	}

	items, err := h.service.ListTransactions(c.Request.Context(), filter, c.Query("q"))
	if err != nil {
		respondError(c, "Failed to list bank transactions", err)
		return
	}

	response.Success(c, http.StatusOK, "Bank transactions retrieved successfully", items)
}

// Unmatch godoc
// @Summary Undo a match
// @Description Return a matched transaction and its payment to pending
// @Tags reconciliation
// @Produce json
// @Param id path string true "Bank transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/bank-transactions/{id}/unmatch [post]
func (h *ReconciliationHandler) Unmatch(c *gin.Context) {
	if err := h.service.Unmatch(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Failed to unmatch transaction", err)
		return
	}

	response.Success(c, http.StatusOK, "Transaction unmatched", nil)
}

// ListPayments godoc
// @Summary List pending payments
// @Description With active_transaction_id each payment is classified against that transaction
// @Tags reconciliation
// @Produce json
// @Param q query string false "Search in client name, reference and invoice folio"
// @Param active_transaction_id query string false "Transaction being dragged"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/payments [get]
func (h *ReconciliationHandler) ListPayments(c *gin.Context) {
	items, err := h.service.ListPayments(c.Request.Context(), c.Query("q"), c.Query("active_transaction_id"))
	if err != nil {
		respondError(c, "Failed to list payments", err)
		return
	}

	response.Success(c, http.StatusOK, "Payments retrieved successfully", items)
}

// ConfirmPayment godoc
// @Summary Confirm a payment without a bank transaction
// @Description Refused with 409 while the payment is the target of a pending proposal
// @Tags reconciliation
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/payments/{id}/confirm [post]
func (h *ReconciliationHandler) ConfirmPayment(c *gin.Context) {
	if err := h.service.ConfirmPayment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "Failed to confirm payment", err)
		return
	}

	response.Success(c, http.StatusOK, "Payment confirmed", nil)
}

// Suggestions godoc
// @Summary Suggested matches
// @Description Pending credit transactions with the payments within tolerance, closest first
// @Tags reconciliation
// @Produce json
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/reconcile/suggestions [get]
func (h *ReconciliationHandler) Suggestions(c *gin.Context) {
	out, err := h.service.Suggestions(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to compute suggestions", err)
		return
	}

	response.Success(c, http.StatusOK, "Suggestions computed successfully", out)
}

// Summary godoc
// @Summary Reconciliation counters
// @Tags reconciliation
// @Produce json
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/reconcile/summary [get]
func (h *ReconciliationHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to compute summary", err)
		return
	}

	response.Success(c, http.StatusOK, "Summary retrieved successfully", summary)
}

// Propose godoc
// @Summary Propose a match
// @Description Drop a transaction on a payment. The pairing is held until confirmed or cancelled.
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param request body ProposeRequest true "Pairing"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /api/v1/reconcile/proposals [post]
func (h *ReconciliationHandler) Propose(c *gin.Context) {
	var req ProposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithError(err).Error("Invalid request")
		response.ValidationError(c, err.Error())
		return
	}

	proposal, err := h.service.Propose(c.Request.Context(), req.TransactionID, req.PaymentID)
	if err != nil {
		respondError(c, "Match could not be proposed", err)
		return
	}

	response.Created(c, "Match proposed, awaiting confirmation", proposal)
}

// ConfirmProposal godoc
// @Summary Confirm a proposed match
// @Tags reconciliation
// @Produce json
// @Param proposal_id path string true "Proposal ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/reconcile/proposals/{proposal_id}/confirm [post]
func (h *ReconciliationHandler) ConfirmProposal(c *gin.Context) {
	proposal, err := h.service.ConfirmProposal(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		respondError(c, "Match could not be confirmed", err)
		return
	}

	response.Success(c, http.StatusOK, "Match confirmed", proposal)
}

// CancelProposal godoc
// @Summary Cancel a proposed match
// @Tags reconciliation
// @Produce json
// @Param proposal_id path string true "Proposal ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/reconcile/proposals/{proposal_id} [delete]
func (h *ReconciliationHandler) CancelProposal(c *gin.Context) {
	if err := h.service.CancelProposal(c.Param("proposal_id")); err != nil {
		respondError(c, "Proposal not found", err)
		return
	}

	response.Success(c, http.StatusOK, "Proposal cancelled", nil)
}
