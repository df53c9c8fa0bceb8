package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "API_BASE_PATH", "GIN_MODE", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
		"TLS_P12_PATH", "TLS_P12_PASSWORD", "STORAGE_DRIVER", "REDIS_URL", "REDIS_NAMESPACE",
		"JWT_EXPIRATION_HOURS", "TIMEZONE", "SEED_ON_START",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("JWT_SECRET_KEY", "segredo")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "/api/v1", cfg.APIBasePath)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiration)
	assert.True(t, cfg.SeedOnStart)
	assert.NotNil(t, cfg.Postgres)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_PATH", "tuckshop/api/")
	t.Setenv("STORAGE_DRIVER", "REDIS")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local, http://b.local,")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("SEED_ON_START", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tuckshop/api", cfg.APIBasePath)
	assert.Equal(t, StorageRedis, cfg.StorageDriver)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.False(t, cfg.SeedOnStart)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"driver desconhecido", "STORAGE_DRIVER", "sqlite"},
		{"expiração inválida", "JWT_EXPIRATION_HOURS", "zero"},
		{"fuso inválido", "TIMEZONE", "Mars/Olympus"},
		{"seed inválido", "SEED_ON_START", "talvez"},
		{"sem segredo", "JWT_SECRET_KEY", ""},
		{"p12 sem senha", "TLS_P12_PATH", "/certs/api.p12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
