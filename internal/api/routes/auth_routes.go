package routes

import (
	"github.com/JustTro11/property-management/internal/api/dto"
	"github.com/JustTro11/property-management/internal/api/handlers"
	"github.com/JustTro11/property-management/internal/api/middleware"
	"github.com/JustTro11/property-management/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

// AuthRoutes handles the setup of auth-related routes
type AuthRoutes struct {
	handler   *handlers.AuthHandler
	jwtSecret string
	limiter   auth.RateLimiter
}

// NewAuthRoutes creates a new AuthRoutes instance. limiter may be nil when
// Redis is unavailable.
func NewAuthRoutes(handler *handlers.AuthHandler, jwtSecret string, limiter auth.RateLimiter) *AuthRoutes {
	return &AuthRoutes{
		handler:   handler,
		jwtSecret: jwtSecret,
		limiter:   limiter,
	}
}

// RegisterRoutes registers all auth-related routes
func (r *AuthRoutes) RegisterRoutes(router *gin.Engine) {
	validation := middleware.NewValidationMiddleware()
	metrics := middleware.NewMetricsMiddleware()

	authGroup := router.Group("/api/auth")
	authGroup.Use(metrics.CollectMetrics())

	login := authGroup.Group("")
	if r.limiter != nil {
		// Brute-force protection on the credential check
		login.Use(middleware.RateLimitMiddleware(r.limiter))
	}
	login.POST("/login", validation.ValidateRequest(&dto.LoginRequest{}), r.handler.Login)

	authGroup.POST("/logout", middleware.NewAuthMiddleware(r.jwtSecret), r.handler.Logout)
}
