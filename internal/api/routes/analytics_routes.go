package routes

import (
	"github.com/JustTro11/property-management/internal/api/dto"
	"github.com/JustTro11/property-management/internal/api/handlers"
	"github.com/JustTro11/property-management/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// AnalyticsRoutes handles the setup of analytics-related routes
type AnalyticsRoutes struct {
	handler   *handlers.AnalyticsHandler
	jwtSecret string
}

// NewAnalyticsRoutes creates a new AnalyticsRoutes instance
func NewAnalyticsRoutes(handler *handlers.AnalyticsHandler, jwtSecret string) *AnalyticsRoutes {
	return &AnalyticsRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all analytics-related routes
func (r *AnalyticsRoutes) RegisterRoutes(router *gin.Engine) {
	validation := middleware.NewValidationMiddleware()
	metrics := middleware.NewMetricsMiddleware()

	analytics := router.Group("/api/analytics")
	analytics.Use(metrics.CollectMetrics())

	// The dashboard summary is for the admin only; tracking is public so
	// the storefront can report events without a session.
	analytics.GET("", middleware.NewAuthMiddleware(r.jwtSecret), r.handler.GetSummary)
	analytics.POST("/track", validation.ValidateRequest(&dto.TrackEventRequest{}), r.handler.TrackEvent)
}
