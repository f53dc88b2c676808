package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/middleware"
)

// defaultRecentLimit is the number of transactions shown on the dashboard.
const defaultRecentLimit = 5

// dashboardHandler handles HTTP requests for the dashboard views.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers the dashboard routes.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getSummary)
		dashboard.GET("/recent", h.getRecentTransactions)
	}
}

// getSummary godoc
// @Summary Dashboard headline figures
// @Description Returns net worth, cash assets, and investment value.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reportingService.DashboardSummary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getRecentTransactions godoc
// @Summary Recent transactions
// @Description Returns the most recent transactions, newest date first.
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of transactions" default(5)
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/recent [get]
func (h *dashboardHandler) getRecentTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	recent, err := h.reportingService.RecentTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to list recent transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, recent)
}
