package routes

import (
	"time"

	"github.com/JustTro11/property-management/internal/api/dto"
	"github.com/JustTro11/property-management/internal/api/handlers"
	"github.com/JustTro11/property-management/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// PropertyRoutes handles the setup of property-related routes
type PropertyRoutes struct {
	handler   *handlers.PropertyHandler
	jwtSecret string
}

// NewPropertyRoutes creates a new PropertyRoutes instance
func NewPropertyRoutes(handler *handlers.PropertyHandler, jwtSecret string) *PropertyRoutes {
	return &PropertyRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
	}
}

// RegisterRoutes registers all property-related routes
func (r *PropertyRoutes) RegisterRoutes(router *gin.Engine, cache *middleware.CacheMiddleware) {
	validation := middleware.NewValidationMiddleware()
	metrics := middleware.NewMetricsMiddleware()
	circuitBreaker := middleware.NewCircuitBreaker(middleware.CircuitBreakerConfig{
		FailureThreshold:    5,
		SuccessThreshold:    2,
		Timeout:             15 * time.Second,
		HalfOpenMaxRequests: 3,
	})

	// Caching is skipped entirely when Redis is down
	cacheResponse := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	cacheInvalidate := cacheResponse
	if cache != nil {
		cacheResponse = cache.CacheResponse()
		cacheInvalidate = cache.CacheInvalidate("properties:*")
	}

	properties := router.Group("/api/properties")
	properties.Use(metrics.CollectMetrics())
	properties.Use(circuitBreaker.CircuitBreakerMiddleware())

	// Public browsing endpoints with caching
	properties.GET("", cacheResponse, r.handler.ListProperties)
	properties.GET("/:id", cacheResponse, r.handler.GetProperty)
	properties.POST("/batch", r.handler.BatchProperties)

	// Admin write operations with cache invalidation
	admin := properties.Group("")
	admin.Use(middleware.NewAuthMiddleware(r.jwtSecret))
	admin.Use(middleware.RequireRole("admin"))
	admin.POST("", validation.ValidateRequest(&dto.CreatePropertyRequest{}), cacheInvalidate, r.handler.CreateProperty)
	admin.PUT("/:id", validation.ValidateRequest(&dto.UpdatePropertyRequest{}), cacheInvalidate, r.handler.UpdateProperty)
	admin.DELETE("/:id", cacheInvalidate, r.handler.DeleteProperty)
}
