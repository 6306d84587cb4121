package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Session
	SecretKey  string        // Used for signing and encrypting session cookies
	SessionTTL time.Duration // How long batch results stay downloadable
	RedisURL   string        // Optional Redis backing for session cookies, e.g. "redis://localhost:6379"

	// Uploads
	UploadDir     string // Root directory for per-session upload folders
	MaxUploadSize int    // Total request body limit in bytes

	// Assets
	ViewsDir string // HTML template directory

	// Housekeeping
	CleanupInterval time.Duration // How often the temp-file sweep runs
	CleanupMaxAge   time.Duration // Age threshold for orphaned session folders
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		ServerAddr:      ":" + getEnv("PORT", "5000"),
		SecretKey:       getEnv("SECRET_KEY", "change-me-in-production-min-32-chars"),
		SessionTTL:      getDuration("SESSION_TTL", 30*time.Minute),
		RedisURL:        getEnv("REDIS_URL", ""),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:   getInt("MAX_UPLOAD_SIZE", 50*1024*1024),
		ViewsDir:        getEnv("VIEWS_DIR", "./views"),
		CleanupInterval: getDuration("CLEANUP_INTERVAL", 10*time.Minute),
		CleanupMaxAge:   getDuration("CLEANUP_MAX_AGE", time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
