package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	"github.com/smartfin/smartfinance_backend/internal/dto"
	"github.com/smartfin/smartfinance_backend/internal/middleware"
	"github.com/smartfin/smartfinance_backend/internal/utils"
)

// ExchangeGoogleCode godoc
// @Summary Exchange Google authorization code
// @Description Exchanges a Google OAuth authorization code for an application JWT, creating the user on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body dto.ExchangeCodeRequest true "Authorization Code"
// @Success 200 {object} dto.ExchangeCodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Code exchange or token validation failed"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *AuthHandler) ExchangeGoogleCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	info, err := h.oauthSvc.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}
	if !info.EmailVerified {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google account email is not verified"})
		return
	}

	user, err := h.userService.CreateOAuthUser(c.Request.Context(), info.Name, info.Email, domain.ProviderGoogle, info.Subject)
	if err != nil {
		logger.Error("Failed to find or create Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeCodeResponse{Token: token, User: dto.ToUserResponse(user)})
}
