package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activities-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "teachers.json", cfg.TeachersFile)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.UsePostgres())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("TOKEN_TTL", "10m")
	t.Setenv("DB_DSN", "postgres://u:p@localhost:5432/db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Minute, cfg.TokenTTL)
	assert.True(t, cfg.UsePostgres())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "Missing secret",
			env:  map[string]string{"JWT_SECRET": ""},
		},
		{
			name: "Blank secret",
			env:  map[string]string{"JWT_SECRET": "   "},
		},
		{
			name: "Non-positive TTL",
			env:  map[string]string{"JWT_SECRET": "x", "TOKEN_TTL": "0s"},
		},
		{
			name: "Broken TTL",
			env:  map[string]string{"JWT_SECRET": "x", "TOKEN_TTL": "soon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
