package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Audit   AuditConfig
}

type ServerConfig struct {
	Port        string
	Environment string
	RateLimit   RateLimitConfig
}

// BackendConfig points the gateway at the external marketplace REST API.
type BackendConfig struct {
	BaseURL        string
	AuthBaseURL    string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	SessionTTL time.Duration
}

type AuditConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	sessionTTL := cast.ToInt(getEnv("SESSION_TTL_HOURS", "24"))
	rateLimit := cast.ToInt(getEnv("RATE_LIMIT", "100"))
	rateLimitWindow := cast.ToInt(getEnv("RATE_LIMIT_WINDOW", "60"))
	requestTimeout := cast.ToInt(getEnv("BACKEND_TIMEOUT_SECONDS", "30"))

	backendBase := getEnv("BACKEND_BASE_URL", "http://localhost:8081/api/v1")

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("ENVIRONMENT", "development"),
			RateLimit: RateLimitConfig{
				Enabled: cast.ToBool(getEnv("RATE_LIMIT_ENABLED", "true")),
				Limit:   rateLimit,
				Window:  time.Duration(rateLimitWindow) * time.Second,
			},
		},
		Backend: BackendConfig{
			BaseURL: backendBase,
			// Auth endpoints live one level above the versioned API root.
			AuthBaseURL:    getEnv("BACKEND_AUTH_BASE_URL", "http://localhost:8081/api"),
			RequestTimeout: time.Duration(requestTimeout) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       cast.ToInt(getEnv("REDIS_DB", "0")),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "your-secret-key"),
			SessionTTL: time.Duration(sessionTTL) * time.Hour,
		},
		Audit: AuditConfig{
			Enabled:  cast.ToBool(getEnv("AUDIT_DB_ENABLED", "false")),
			Host:     getEnv("AUDIT_DB_HOST", "localhost"),
			Port:     getEnv("AUDIT_DB_PORT", "5432"),
			User:     getEnv("AUDIT_DB_USER", "postgres"),
			Password: getEnv("AUDIT_DB_PASSWORD", "postgres"),
			DBName:   getEnv("AUDIT_DB_NAME", "admin_gateway"),
			SSLMode:  getEnv("AUDIT_DB_SSL_MODE", "disable"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
