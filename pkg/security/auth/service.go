package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/JustTro11/property-management/pkg/config"
)

const AdminRole = "admin"

var ErrInvalidCredentials = errors.New("invalid email or password")

// Service authenticates the configured admin account and manages its sessions.
type Service interface {
	Login(ctx context.Context, email, password, deviceInfo, ipAddress string) (string, *Claims, error)
	Logout(ctx context.Context, token string) error
}

type service struct {
	jwtService *JWTService
	sessions   *SessionStore
	adminEmail string
	adminHash  string
}

func NewService(cfg *config.Config, jwtService *JWTService) Service {
	return &service{
		jwtService: jwtService,
		sessions:   GetSessionStore(),
		adminEmail: strings.ToLower(cfg.Auth.AdminEmail),
		adminHash:  cfg.Auth.AdminPasswordHash,
	}
}

func (s *service) Login(ctx context.Context, email, password, deviceInfo, ipAddress string) (string, *Claims, error) {
	if s.adminEmail == "" || s.adminHash == "" {
		return "", nil, errors.New("admin credentials are not configured")
	}
	if strings.ToLower(strings.TrimSpace(email)) != s.adminEmail {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(s.adminEmail, AdminRole)
	if err != nil {
		return "", nil, err
	}

	s.sessions.CreateSession(s.adminEmail, deviceInfo, ipAddress, token, s.jwtService.TokenDuration())

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	expiry := time.Now().Add(s.jwtService.TokenDuration())
	if err == nil && claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	GetTokenBlacklist().AddToBlacklist(token, expiry)
	s.sessions.InvalidateSession(token)
	return nil
}
