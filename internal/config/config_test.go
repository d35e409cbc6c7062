package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ATLAS_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "5000", cfg.Server.Port)
	require.Equal(t, "exercise_tracker", cfg.Database.Name)
	require.Equal(t, time.Hour, cfg.JWT.TokenTTL)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	require.False(t, cfg.TLSEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ATLAS_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_NAME", "tracker_test")
	t.Setenv("JWT_TOKEN_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "tracker_test", cfg.Database.Name)
	require.Equal(t, 30*time.Minute, cfg.JWT.TokenTTL)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MissingURI(t *testing.T) {
	t.Setenv("ATLAS_URI", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ATLAS_URI")
}

func TestValidate_TLSFilesMustPair(t *testing.T) {
	cfg := &Config{}
	cfg.Database.URI = "mongodb://localhost:27017"
	cfg.JWT.Secret = "test-secret"
	cfg.Server.CertFile = "server.crt"

	require.Error(t, cfg.Validate())

	cfg.Server.KeyFile = "server.key"
	require.NoError(t, cfg.Validate())
	require.True(t, cfg.TLSEnabled())
}
