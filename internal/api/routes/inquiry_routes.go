package routes

import (
	"github.com/JustTro11/property-management/internal/api/dto"
	"github.com/JustTro11/property-management/internal/api/handlers"
	"github.com/JustTro11/property-management/internal/api/middleware"
	"github.com/JustTro11/property-management/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

// InquiryRoutes handles the setup of inquiry-related routes
type InquiryRoutes struct {
	handler *handlers.InquiryHandler
	limiter auth.RateLimiter
}

// NewInquiryRoutes creates a new InquiryRoutes instance. limiter may be nil
// when Redis is unavailable.
func NewInquiryRoutes(handler *handlers.InquiryHandler, limiter auth.RateLimiter) *InquiryRoutes {
	return &InquiryRoutes{
		handler: handler,
		limiter: limiter,
	}
}

// RegisterRoutes registers all inquiry-related routes
func (r *InquiryRoutes) RegisterRoutes(router *gin.Engine) {
	validation := middleware.NewValidationMiddleware()
	metrics := middleware.NewMetricsMiddleware()

	inquiries := router.Group("/api/inquiries")
	inquiries.Use(metrics.CollectMetrics())

	// Rate limit the public mail-sending endpoint
	if r.limiter != nil {
		inquiries.Use(middleware.RateLimitMiddleware(r.limiter))
	}

	inquiries.POST("/tour", validation.ValidateRequest(&dto.TourRequest{}), r.handler.RequestTour)
}
