package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/grn_tracker/cmd/docs"
	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/middleware"
	"github.com/SscSPs/grn_tracker/internal/platform/config"
	"github.com/SscSPs/grn_tracker/internal/platform/validation"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// db may be nil, in which case /health does not check the database. rateLimiter may be
// nil to disable rate limiting.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	db Pinger,
	rateLimiter *limiter.Limiter,
) {
	if err := validation.RegisterGinValidator(); err != nil {
		slog.Warn("Decimal validation not registered with gin", slog.String("error", err.Error()))
	}

	r.GET("/health", getHealth(db))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, rateLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	auth := middleware.NoAuthMiddleware()
	if cfg.AuthEnabled {
		auth = middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	}

	v1 := r.Group("/api/v1")
	if rateLimiter != nil {
		v1.Use(middleware.RateLimit(rateLimiter))
	}
	v1.Use(auth)

	registerGRNRoutes(v1, service.GRN, service.Register)
	registerVendorRoutes(v1, service.Vendor)
	registerBranchRoutes(v1, service.Branch)
	registerManufacturerRoutes(v1, service.Manufacturer)
	registerAssetCategoryRoutes(v1, service.AssetCategory, service.AssetSubcategory)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
