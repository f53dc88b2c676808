package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/middleware"
)

// reportHandler handles HTTP requests for the analytical reports.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportHandler(rs portssvc.ReportingSvcFacade) *reportHandler {
	return &reportHandler{reportingService: rs}
}

// registerReportRoutes registers the report routes.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/expense-by-category", h.getExpenseByCategory)
		reports.GET("/monthly-flow", h.getMonthlyFlow)
		reports.GET("/holdings", h.getHoldings)
	}
}

// getExpenseByCategory godoc
// @Summary Expense totals by category
// @Description Sums EXPENSE transactions per category. Categories with no expenses are omitted.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ExpenseByCategoryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/expense-by-category [get]
func (h *reportHandler) getExpenseByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.ExpenseByCategory(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build category report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getMonthlyFlow godoc
// @Summary Monthly income and expense flow
// @Description Buckets transactions by calendar month in ascending order. Transfers count in neither bucket.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.MonthlyFlowResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly-flow [get]
func (h *reportHandler) getMonthlyFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.MonthlyFlow(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build monthly flow report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getHoldings godoc
// @Summary Holdings performance report
// @Description Returns per-holding market value, cost basis, and profit, with portfolio totals.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.HoldingsReportResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/holdings [get]
func (h *reportHandler) getHoldings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportingService.HoldingsReport(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build holdings report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
