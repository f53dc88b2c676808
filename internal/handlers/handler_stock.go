package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/dto"
	"github.com/smartfin/smartfinance_backend/internal/middleware"
)

// stockHandler handles HTTP requests related to stock holdings.
type stockHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newStockHandler(ls portssvc.LedgerSvcFacade) *stockHandler {
	return &stockHandler{ledgerService: ls}
}

// registerStockRoutes registers routes related to stock holdings.
func registerStockRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newStockHandler(ledgerService)

	stocks := rg.Group("/stocks")
	{
		stocks.POST("", h.createStock)
		stocks.DELETE("/:stockID", h.deleteStock)
		stocks.POST("/:stockID/refresh", h.refreshStockPrice)
		stocks.POST("/refresh", h.refreshAllPrices)
	}
}

// createStock godoc
// @Summary Add a stock holding
// @Description Adds a holding; the current price starts at the average cost until the first refresh.
// @Tags stocks
// @Accept json
// @Produce json
// @Param stock body dto.CreateStockRequest true "Holding details"
// @Success 201 {object} dto.FinancialDataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stocks [post]
func (h *stockHandler) createStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	data, err := h.ledgerService.AddStock(c.Request.Context(), userID, req)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to add stock")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFinancialDataResponse(data))
}

// deleteStock godoc
// @Summary Delete a stock holding
// @Tags stocks
// @Produce json
// @Param stockID path string true "Stock ID"
// @Success 200 {object} dto.FinancialDataResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Stock not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stocks/{stockID} [delete]
func (h *stockHandler) deleteStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stockID := c.Param("stockID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	data, err := h.ledgerService.DeleteStock(c.Request.Context(), userID, stockID)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to delete stock")
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialDataResponse(data))
}

// refreshStockPrice godoc
// @Summary Refresh one holding's price
// @Description Looks up the current market price for the holding. A failed lookup leaves the holding unchanged.
// @Tags stocks
// @Produce json
// @Param stockID path string true "Stock ID"
// @Success 200 {object} dto.FinancialDataResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Stock not found"
// @Failure 502 {object} ErrorResponse "Price lookup failed"
// @Security BearerAuth
// @Router /stocks/{stockID}/refresh [post]
func (h *stockHandler) refreshStockPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stockID := c.Param("stockID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	data, err := h.ledgerService.RefreshStockPrice(c.Request.Context(), userID, stockID)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to refresh price")
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialDataResponse(data))
}

// refreshAllPrices godoc
// @Summary Refresh all holding prices
// @Description Refreshes every holding's price under a bounded concurrency cap. Failed lookups keep prior prices and are listed in the report.
// @Tags stocks
// @Produce json
// @Success 200 {object} dto.RefreshReportResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stocks/refresh [post]
func (h *stockHandler) refreshAllPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	data, report, err := h.ledgerService.RefreshAllPrices(c.Request.Context(), userID)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to refresh prices")
		return
	}

	c.JSON(http.StatusOK, dto.RefreshReportResponse{
		Updated: report.Updated,
		Failed:  report.Failed,
		Stocks:  dto.ToListStockResponse(data.Stocks),
	})
}
