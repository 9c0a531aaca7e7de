package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingConfig marks required environment values that were absent at
// startup. The caller logs it and keeps going; operations that depend on
// the missing value fail when attempted.
var ErrMissingConfig = errors.New("missing required configuration")

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Content ContentConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	SessionExpiry time.Duration
}

// AdminConfig is the single admin account that gates the CMS surface.
// The password is bcrypt-compared at login, never stored in plain form
// beyond process memory.
type AdminConfig struct {
	Email    string
	Password string
}

// ContentConfig carries editorial settings for the blog.
// Authors is the enumerated list the editor may attribute posts to.
type ContentConfig struct {
	Authors []string
}

// Load reads configuration from environment variables.
// A non-nil error wrapping ErrMissingConfig still returns a usable Config
// with defaults applied; the caller decides how loudly to complain.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Happy Brother AC API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			SessionExpiry: time.Duration(getEnvInt("JWT_SESSION_EXPIRY_HOURS", 24)) * time.Hour,
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@happybrotherac.com"),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Content: ContentConfig{
			Authors: splitList(getEnv("BLOG_AUTHORS", "Ahmed Hassan,Sophia White,Omar Farooq")),
		},
	}

	var missing []string
	if cfg.JWT.Secret == "" {
		if cfg.App.Environment == "development" {
			cfg.JWT.Secret = "dev-only-secret"
		} else {
			missing = append(missing, "JWT_SECRET")
		}
	}
	if cfg.Admin.Password == "" {
		if cfg.App.Environment == "development" {
			cfg.Admin.Password = "admin123"
		} else {
			missing = append(missing, "ADMIN_PASSWORD")
		}
	}

	if len(missing) > 0 {
		return cfg, fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
