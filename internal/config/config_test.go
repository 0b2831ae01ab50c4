package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("AUTH_JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, devFallbackSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 24, cfg.Auth.SessionTTLHours)
	assert.Equal(t, 30, cfg.Auth.ReceiptTokenTTLDays)
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "super-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
}

func TestTTLFallbacks(t *testing.T) {
	auth := AuthConfig{SessionTTLHours: 0, ReceiptTokenTTLDays: 0}
	assert.Equal(t, "24h0m0s", auth.SessionTTL().String())
	assert.Equal(t, "720h0m0s", auth.ReceiptTokenTTL().String())
}
