package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/dto"
	"github.com/smartfin/smartfinance_backend/internal/middleware"
)

// adviceHandler handles HTTP requests for generated financial advice.
type adviceHandler struct {
	adviceService portssvc.AdviceSvcFacade
}

func newAdviceHandler(as portssvc.AdviceSvcFacade) *adviceHandler {
	return &adviceHandler{adviceService: as}
}

// registerAdviceRoutes registers the advice route.
func registerAdviceRoutes(rg *gin.RouterGroup, adviceService portssvc.AdviceSvcFacade) {
	h := newAdviceHandler(adviceService)
	rg.POST("/advice", h.generateAdvice)
}

// generateAdvice godoc
// @Summary Generate financial advice
// @Description Summarizes the ledger and asks the language model for advice. Model failure returns a fixed fallback message, not an error.
// @Tags advice
// @Produce json
// @Success 200 {object} dto.AdviceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /advice [post]
func (h *adviceHandler) generateAdvice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	advice, err := h.adviceService.GenerateAdvice(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to generate advice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate advice"})
		return
	}

	c.JSON(http.StatusOK, dto.AdviceResponse{Advice: advice})
}
