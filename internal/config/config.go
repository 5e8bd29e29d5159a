package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/pkg/storage"
	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	JWT       JWTConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Files     FilesConfig
	Webhook   WebhookConfig
	Geocode   GeocodeConfig
	Capture   CaptureConfig
	Directory DirectoryConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	LogFile        string
	Timezone       string
	AllowedOrigins []string
	// LoginDelay is waited before every credential check.
	LoginDelay time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  time.Duration
	RefreshExpiration time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

type RedisConfig struct {
	URL string
}

// StorageConfig selects where sessions and the record snapshot live.
type StorageConfig struct {
	Backend          string
	SnapshotKey      string
	SessionKeyPrefix string
	SessionTTL       time.Duration
}

// FilesNone keeps photos inline in the attendance record.
const FilesNone = "none"

// FilesConfig selects where attendance photos are stored.
type FilesConfig struct {
	Type     string
	BasePath string
	BaseURL  string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
	MinIORegion    string
}

const (
	WebhookModeLog  = "log"
	WebhookModeHTTP = "http"
)

type WebhookConfig struct {
	Mode          string
	BaseURL       string
	Timeout       time.Duration
	WorkerCount   int
	QueueSize     int
	MaxAttempts   int
	RetryInterval time.Duration

	OAuth2ClientID     string
	OAuth2ClientSecret string
	OAuth2TokenURL     string
	OAuth2Scopes       []string
}

type GeocodeConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

type CaptureConfig struct {
	LocationTimeout time.Duration
}

// DirectoryConfig points at an optional YAML identity directory. Empty uses
// the built-in demo accounts.
type DirectoryConfig struct {
	File string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded, using process environment", "error", err)
	}

	config := &Config{}
	var errs []error

	intEnv := func(key, fallback string) int {
		v, err := strconv.Atoi(getEnv(key, fallback))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", key, err))
		}
		return v
	}
	durationEnv := func(key, fallback string) time.Duration {
		v, err := time.ParseDuration(getEnv(key, fallback))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", key, err))
		}
		return v
	}
	boolEnv := func(key, fallback string) bool {
		v, err := strconv.ParseBool(getEnv(key, fallback))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s: %w", key, err))
		}
		return v
	}

	// Application configuration
	config.App = AppConfig{
		Port:           intEnv("APP_PORT", "8080"),
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
		Timezone:       getEnv("APP_TIMEZONE", "Local"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		LoginDelay:     durationEnv("LOGIN_DELAY", "1s"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  durationEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: durationEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	// Database configuration
	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     intEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "grofast"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(intEnv("DB_MAX_CONNS", "10")),
	}

	config.Redis = RedisConfig{
		URL: getEnv("REDIS_URL", ""),
	}

	config.Storage = StorageConfig{
		Backend:          strings.ToLower(getEnv("KV_BACKEND", kvstore.BackendMemory)),
		SnapshotKey:      getEnv("SNAPSHOT_KEY", "grofast_db"),
		SessionKeyPrefix: getEnv("SESSION_KEY_PREFIX", "grofast_user:"),
		SessionTTL:       durationEnv("SESSION_TTL", "0s"),
	}

	config.Files = FilesConfig{
		Type:           strings.ToLower(getEnv("FILE_STORAGE", FilesNone)),
		BasePath:       getEnv("FILE_BASE_PATH", "./uploads"),
		BaseURL:        getEnv("FILE_BASE_URL", "http://localhost:8080/uploads"),
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "grofast-attendance"),
		MinIOUseSSL:    boolEnv("MINIO_USE_SSL", "false"),
		MinIORegion:    getEnv("MINIO_REGION", ""),
	}

	config.Webhook = WebhookConfig{
		Mode:               strings.ToLower(getEnv("WEBHOOK_MODE", WebhookModeLog)),
		BaseURL:            getEnv("WEBHOOK_BASE_URL", ""),
		Timeout:            durationEnv("WEBHOOK_TIMEOUT", "10s"),
		WorkerCount:        intEnv("WEBHOOK_WORKERS", "2"),
		QueueSize:          intEnv("WEBHOOK_QUEUE_SIZE", "256"),
		MaxAttempts:        intEnv("WEBHOOK_MAX_ATTEMPTS", "5"),
		RetryInterval:      durationEnv("WEBHOOK_RETRY_INTERVAL", "1m"),
		OAuth2ClientID:     getEnv("WEBHOOK_OAUTH2_CLIENT_ID", ""),
		OAuth2ClientSecret: getEnv("WEBHOOK_OAUTH2_CLIENT_SECRET", ""),
		OAuth2TokenURL:     getEnv("WEBHOOK_OAUTH2_TOKEN_URL", ""),
		OAuth2Scopes:       getEnvSlice("WEBHOOK_OAUTH2_SCOPES", ""),
	}

	config.Geocode = GeocodeConfig{
		BaseURL:   getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		UserAgent: getEnv("GEOCODE_USER_AGENT", "grofast-portal/1.0"),
		Timeout:   durationEnv("GEOCODE_TIMEOUT", "5s"),
		CacheTTL:  durationEnv("GEOCODE_CACHE_TTL", "24h"),
	}

	config.Capture = CaptureConfig{
		LocationTimeout: durationEnv("CAPTURE_LOCATION_TIMEOUT", "15s"),
	}

	config.Directory = DirectoryConfig{
		File: getEnv("DIRECTORY_FILE", ""),
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}

	switch c.Storage.Backend {
	case kvstore.BackendMemory:
	case kvstore.BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis backend")
		}
	case kvstore.BackendPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unsupported KV_BACKEND %q", c.Storage.Backend)
	}

	switch c.Files.Type {
	case FilesNone, storage.BackendLocal:
	case storage.BackendMinIO:
		if c.Files.MinIOAccessKey == "" || c.Files.MinIOSecretKey == "" {
			return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required for minio storage")
		}
	default:
		return fmt.Errorf("unsupported FILE_STORAGE %q", c.Files.Type)
	}

	switch c.Webhook.Mode {
	case WebhookModeLog:
	case WebhookModeHTTP:
		if c.Webhook.BaseURL == "" {
			return fmt.Errorf("WEBHOOK_BASE_URL is required in http mode")
		}
	default:
		return fmt.Errorf("unsupported WEBHOOK_MODE %q", c.Webhook.Mode)
	}

	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location resolves App.Timezone, falling back to the host zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		slog.Warn("unknown timezone, using local", "timezone", c.App.Timezone, "error", err)
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
