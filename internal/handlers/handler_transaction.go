package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/dto"
	"github.com/smartfin/smartfinance_backend/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
		transactions.GET("/categories", h.listSuggestedCategories)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records a transaction and applies its balance effect to the referenced account in the same update.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.FinancialDataResponse
// @Failure 400 {object} ErrorResponse "Validation error, unknown account, or unsupported TRANSFER type"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	data, err := h.ledgerService.AddTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFinancialDataResponse(data))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Reverts the transaction's balance effect and removes it from the ledger.
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.FinancialDataResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	data, err := h.ledgerService.DeleteTransaction(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to delete transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialDataResponse(data))
}

// listSuggestedCategories godoc
// @Summary List suggested transaction categories
// @Description Returns the built-in category suggestions for transaction entry forms.
// @Tags transactions
// @Produce json
// @Success 200 {object} map[string][]string
// @Security BearerAuth
// @Router /transactions/categories [get]
func (h *transactionHandler) listSuggestedCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": domain.SuggestedCategories})
}
