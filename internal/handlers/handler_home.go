package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleHealthCheck godoc
// @Summary Health check
// @Description Reports service liveness.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func handleHealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
