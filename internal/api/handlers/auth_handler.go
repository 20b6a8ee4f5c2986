package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/JustTro11/property-management/internal/api/dto"
	"github.com/JustTro11/property-management/pkg/security/auth"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	service auth.Service
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary Admin login
// @Description Authenticate the admin account and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Admin credentials"
// @Success 200 {object} dto.LoginResponse "Token issued"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if validated, exists := c.Get("validated_model"); exists {
		if ptr, ok := validated.(*dto.LoginRequest); ok {
			req = *ptr
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, claims, err := h.service.Login(c.Request.Context(), req.Email, req.Password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	expiresAt := time.Now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: expiresAt,
	})
}

// Logout godoc
// @Summary Admin logout
// @Description Invalidate the caller's session and blacklist the token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LogoutResponse "Session invalidated"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenVal, exists := c.Get("token")
	token, _ := tokenVal.(string)
	if !exists || token == "" {
		// Fall back to the header when auth middleware did not run
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}
		token = strings.TrimPrefix(header, "Bearer ")
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}

	c.JSON(http.StatusOK, dto.LogoutResponse{Message: "logged out"})
}
