package handlers

import (
	"github.com/fleetpulse/fleet_billing_app/cmd/docs"
	portssvc "github.com/fleetpulse/fleet_billing_app/internal/core/ports/services"
	"github.com/fleetpulse/fleet_billing_app/internal/middleware"
	"github.com/fleetpulse/fleet_billing_app/internal/platform/config"
	"github.com/fleetpulse/fleet_billing_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", getHealth)

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// The dashboard runs open by default; JWT auth is opt-in per deployment.
	if cfg.AuthEnabled {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}

	// Delegate route registration to specific handlers, passing required services
	registerRateRoutes(v1, cfg, services.Rates, services.Conversion)
	registerNodeRoutes(v1, services.Billing, services.Preference)
	registerPortfolioRoutes(v1, cfg, services.Billing, services.Preference)
	registerPreferenceRoutes(v1, services.Preference)
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
