package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
)

// Config holds all configuration for the garden site content service
type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	Revalidate RevalidateConfig
	Routing    RoutingConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Database   DatabaseConfig
	Cleanup    CleanupConfig
	Defaults   DefaultsConfig
	LogLevel   slog.Level
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// StoreConfig identifies the remote content store
type StoreConfig struct {
	ProjectID    string
	Dataset      string
	APIVersion   string
	APIHost      string
	UseCDN       bool
	WriteToken   string
	FetchTimeout time.Duration
}

// RevalidateConfig holds the cache invalidation webhook settings
type RevalidateConfig struct {
	Secret      string
	DefaultTags []string
}

// RoutingConfig holds the locales the site routes
type RoutingConfig struct {
	Locales       []string
	DefaultLocale string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// CacheConfig holds page cache configuration
type CacheConfig struct {
	TTL time.Duration
}

// DatabaseConfig holds PostgreSQL configuration for the revalidation audit log
type DatabaseConfig struct {
	DSN string
}

// CleanupConfig holds retention worker configuration
type CleanupConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// DefaultsConfig points at the fallback content file
type DefaultsConfig struct {
	File string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 3000),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Store: StoreConfig{
			ProjectID:    getEnv("SANITY_PROJECT_ID", ""),
			Dataset:      getEnv("SANITY_DATASET", "production"),
			APIVersion:   getEnv("SANITY_API_VERSION", "2026-02-11"),
			APIHost:      getEnv("SANITY_API_HOST", "api.sanity.io"),
			UseCDN:       getEnvAsBool("SANITY_USE_CDN", false),
			WriteToken:   getEnv("SANITY_WRITE_TOKEN", ""),
			FetchTimeout: getEnvAsDuration("FETCH_TIMEOUT", 5*time.Second),
		},
		Revalidate: RevalidateConfig{
			Secret:      getEnv("SANITY_REVALIDATE_SECRET", ""),
			DefaultTags: getEnvAsList("REVALIDATE_DEFAULT_TAGS", []string{"home", "home-en", "home-de"}),
		},
		Routing: RoutingConfig{
			Locales:       getEnvAsList("ROUTING_LOCALES", []string{"de"}),
			DefaultLocale: getEnv("ROUTING_DEFAULT_LOCALE", "de"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			TTL: getEnvAsDuration("CACHE_TTL", time.Hour),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DATABASE_DSN", ""),
		},
		Cleanup: CleanupConfig{
			Interval:  getEnvAsDuration("CLEANUP_INTERVAL", time.Hour),
			Retention: getEnvAsDuration("AUDIT_RETENTION", 30*24*time.Hour),
		},
		Defaults: DefaultsConfig{
			File: getEnv("DEFAULTS_FILE", ""),
		},
		LogLevel: getEnvAsLevel("LOG_LEVEL", slog.LevelInfo),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Store.ProjectID == "" {
		return fmt.Errorf("store project id is required")
	}

	if c.Store.Dataset == "" {
		return fmt.Errorf("store dataset is required")
	}

	if c.Store.APIVersion == "" {
		return fmt.Errorf("store api version is required")
	}

	if len(c.Routing.Locales) == 0 {
		return fmt.Errorf("at least one routed locale is required")
	}

	routed := false
	for _, l := range c.Routing.Locales {
		if !i18n.IsSupported(i18n.Locale(l)) {
			return fmt.Errorf("unsupported routed locale: %s", l)
		}
		if l == c.Routing.DefaultLocale {
			routed = true
		}
	}
	if !routed {
		return fmt.Errorf("default locale %q is not a routed locale", c.Routing.DefaultLocale)
	}

	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func getEnvAsLevel(key string, defaultValue slog.Level) slog.Level {
	if value, exists := os.LookupEnv(key); exists {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
