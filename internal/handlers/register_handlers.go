package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/smartfin/smartfinance_backend/cmd/docs"
	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/middleware"
	"github.com/smartfin/smartfinance_backend/internal/platform/config"
	"github.com/smartfin/smartfinance_backend/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.GET("/health", handleHealthCheck)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// API v1 routes behind JWT auth
	setupAPIV1Routes(r, cfg, services, posthogClient)

	// Swagger routes, disabled in production
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity
// route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret), middleware.PosthogMiddleware(posthogClient))

	registerLedgerRoutes(v1, services.Ledger)
	registerAccountRoutes(v1, services.Ledger)
	registerTransactionRoutes(v1, services.Ledger)
	registerStockRoutes(v1, services.Ledger)
	registerDashboardRoutes(v1, services.Reporting)
	registerReportRoutes(v1, services.Reporting)
	registerAdviceRoutes(v1, services.Advice)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
