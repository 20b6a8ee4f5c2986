package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/JustTro11/property-management/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret",
			JWTExpiryHours:    1,
			JWTIssuer:         "property-management-test",
			AdminEmail:        "admin@luxeliving.example",
			AdminPasswordHash: string(hash),
		},
	}
}

func newTestService(t *testing.T) Service {
	cfg := testConfig(t)
	return NewService(cfg, NewJWTService(cfg))
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newTestService(t)

	token, claims, err := svc.Login(context.Background(), "admin@luxeliving.example", "correct horse", "test", "127.0.0.1")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin@luxeliving.example", claims.Email)
	assert.Equal(t, AdminRole, claims.Role)

	_, ok := GetSessionStore().GetSession(token)
	assert.True(t, ok)
}

func TestLoginNormalizesEmailCase(t *testing.T) {
	svc := newTestService(t)

	_, claims, err := svc.Login(context.Background(), "  Admin@LuxeLiving.example ", "correct horse", "test", "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "admin@luxeliving.example", claims.Email)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@luxeliving.example", "incorrect"},
		{"unknown email", "visitor@luxeliving.example", "correct horse"},
		{"empty password", "admin@luxeliving.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tt.email, tt.password, "test", "127.0.0.1")
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLogoutBlacklistsToken(t *testing.T) {
	svc := newTestService(t)

	token, _, err := svc.Login(context.Background(), "admin@luxeliving.example", "correct horse", "test", "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))

	assert.True(t, GetTokenBlacklist().IsBlacklisted(token))
	_, ok := GetSessionStore().GetSession(token)
	assert.False(t, ok)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	cfg := testConfig(t)
	jwtSvc := NewJWTService(cfg)

	token, err := jwtSvc.GenerateToken("admin@luxeliving.example", AdminRole)
	require.NoError(t, err)

	_, err = ValidateToken(token+"x", "test-secret")
	assert.Error(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)

	claims, err := jwtSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "property-management-test", claims.Issuer)
}
