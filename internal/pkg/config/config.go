package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	CookieName string
	Secret     string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Configured reports whether all three Cloudinary credentials are set.
// The signed-delete route fails closed when they are not.
func (c CloudinaryConfig) Configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type Config struct {
	ServerPort string
	Backend    BackendConfig
	Session    SessionConfig
	Cloudinary CloudinaryConfig

	// RefreshMargin is how long before access-token expiry a proactive
	// refresh becomes due.
	RefreshMargin time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
		Backend: BackendConfig{
			BaseURL: getEnvOrDefault("BACKEND_API_URL", "http://localhost:8080/api/v1"),
			Timeout: getDurationOrDefault("BACKEND_TIMEOUT", 15*time.Second),
		},
		Session: SessionConfig{
			CookieName: getEnvOrDefault("SESSION_COOKIE_NAME", "bookx_session"),
			Secret:     os.Getenv("SESSION_SECRET"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		RefreshMargin: getDurationOrDefault("TOKEN_REFRESH_MARGIN", 5*time.Minute),
	}

	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
