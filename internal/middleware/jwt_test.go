package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fittrack/internal/config"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", TokenTTL: time.Hour}
}

func TestGenerateToken_Roundtrip(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateToken("65f1c3b2a4d5e6f7a8b9c0d1", "user@example.com", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, cfg)
	require.NoError(t, err)
	require.Equal(t, "65f1c3b2a4d5e6f7a8b9c0d1", claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
}

func TestGenerateToken_NoSecret(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "", TokenTTL: time.Hour}

	_, err := GenerateToken("id", "user@example.com", cfg)
	require.ErrorIs(t, err, ErrNoSecret)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("id", "user@example.com", testJWTConfig())
	require.NoError(t, err)

	_, err = ValidateToken(token, &config.JWTConfig{Secret: "other-secret", TokenTTL: time.Hour})
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", TokenTTL: -time.Hour}

	token, err := GenerateToken("id", "user@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg)
	require.Error(t, err)
}

func TestValidateToken_Tampered(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateToken("id", "user@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token+"x", cfg)
	require.Error(t, err)
}
