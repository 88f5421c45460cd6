package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	JWTIssuer      string
	StoreDriver    string
	MigrationsPath string

	// Reference data cache; disabled when RedisAddr is empty.
	RedisAddr         string
	RedisPassword     string
	ReferenceCacheTTL time.Duration

	PosthogAPIKey string
	PosthogHost   string

	FrontendBaseURL string
	// ExportRateLimit uses the ulule limiter format, e.g. "10-M".
	ExportRateLimit string
	LogLevel        string
	RequestTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "personal-finance-app")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REFERENCE_CACHE_TTL", "10m")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_HOST", "https://eu.i.posthog.com")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("EXPORT_RATE_LIMIT", "10-M")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("DATABASE_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		StoreDriver:     strings.ToLower(v.GetString("STORE_DRIVER")),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogHost:     v.GetString("POSTHOG_HOST"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
		ExportRateLimit: v.GetString("EXPORT_RATE_LIMIT"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
	}

	var err error
	if cfg.ReferenceCacheTTL, err = parseDuration(v.GetString("REFERENCE_CACHE_TTL"), 10*time.Minute, "REFERENCE_CACHE_TTL"); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout, err = parseDuration(v.GetString("REQUEST_TIMEOUT"), 30*time.Second, "REQUEST_TIMEOUT"); err != nil {
		return nil, err
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET is the default insecure key.")
	}

	return cfg, nil
}

func parseDuration(raw string, fallback time.Duration, key string) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}
