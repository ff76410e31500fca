package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HoneyNutz/AI-Job-Coach/internal/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret-key", ExpirationHours: 1})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := newTestJWTService()
	other := NewJWTService(&config.JWTConfig{Secret: "a-different-secret", ExpirationHours: 1})

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature")
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	expired := NewJWTService(&config.JWTConfig{Secret: "test-secret-key", ExpirationHours: -1})

	token, err := expired.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = expired.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTService_ValidateToken_Invalid(t *testing.T) {
	service := newTestJWTService()

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage token", "not-a-jwt"},
		{"truncated token", "eyJhbGciOiJIUzI1NiJ9.payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}
