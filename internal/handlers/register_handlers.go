package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/settleline/bizledger/cmd/docs"
	portssvc "github.com/settleline/bizledger/internal/core/ports/services"
	"github.com/settleline/bizledger/internal/middleware"
	"github.com/settleline/bizledger/pkg/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	webhookLimiter *limiter.Limiter,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth)

	// Public webhook ingestion, rate limited since it is unauthenticated
	webhooks := r.Group("/webhooks", middleware.RateLimit(webhookLimiter))
	registerWebhookRoutes(webhooks, services.Reconciliation, cfg.WebhookSecret, cfg.IsProduction)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerAccountRoutes(v1, service.Account)
	registerStockRoutes(v1, service.Stock)
	registerTransactionRoutes(v1, service.Transaction)
	registerOrderRoutes(v1, service.Order)
	registerPayrollRoutes(v1, service.Payroll)
	registerPurchaseOrderRoutes(v1, service.PurchaseOrder)
	registerSettlementRoutes(v1, service.Settlement)
	registerApprovalsRoutes(v1, service.Approvals)
	registerPaymentRoutes(v1, service.Reconciliation)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
