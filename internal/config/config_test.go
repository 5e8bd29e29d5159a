package config

import (
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExpiration)
	assert.Equal(t, kvstore.BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, FilesNone, cfg.Files.Type)
	assert.Equal(t, WebhookModeLog, cfg.Webhook.Mode)
	assert.Equal(t, 15*time.Second, cfg.Capture.LocationTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("APP_PORT", "eighty")
	t.Setenv("WEBHOOK_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_PORT")
	assert.Contains(t, err.Error(), "WEBHOOK_TIMEOUT")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			JWT:     JWTConfig{Secret: "secret"},
			Storage: StorageConfig{Backend: kvstore.BackendMemory},
			Files:   FilesConfig{Type: FilesNone},
			Webhook: WebhookConfig{Mode: WebhookModeLog},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing secret", func(c *Config) { c.JWT.Secret = "" }, "JWT_SECRET_KEY"},
		{"redis without url", func(c *Config) { c.Storage.Backend = kvstore.BackendRedis }, "REDIS_URL"},
		{"postgres without password", func(c *Config) { c.Storage.Backend = kvstore.BackendPostgres }, "DB_PASSWORD"},
		{"postgres with password", func(c *Config) {
			c.Storage.Backend = kvstore.BackendPostgres
			c.Database.Password = "pw"
		}, ""},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "etcd" }, "KV_BACKEND"},
		{"minio without keys", func(c *Config) { c.Files.Type = storage.BackendMinIO }, "MINIO_ACCESS_KEY"},
		{"http webhook without url", func(c *Config) { c.Webhook.Mode = WebhookModeHTTP }, "WEBHOOK_BASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", Name: "grofast", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://u:p@db:5432/grofast?sslmode=disable", cfg.DatabaseURL())
}
