package dto

import "time"

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"admin@luxeliving.example"`
	Password string `json:"password" validate:"required,not_empty"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LogoutResponse acknowledges an invalidated session.
type LogoutResponse struct {
	Message string `json:"message" example:"logged out"`
}
