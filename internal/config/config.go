package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"document-scanner/internal/domain"
)

const defaultWebhookURL = "http://localhost:5678/webhook/document-scanner"

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	WebhookURL         string
	WebhookTimeout     time.Duration
	LogLevel           string
	SessionTTL         time.Duration
	DefaultDarkMode    bool
	CORSAllowedOrigins []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		WebhookURL:      getEnvOrDefault("WEBHOOK_URL", defaultWebhookURL),
		WebhookTimeout:  getEnvDurationOrDefault("WEBHOOK_TIMEOUT", 60*time.Second), // 0 disables
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		SessionTTL:      getEnvDurationOrDefault("SESSION_TTL", 30*time.Minute),
		DefaultDarkMode: getEnvBoolOrDefault("DEFAULT_DARK_MODE", true),
		CORSAllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"http://localhost:3000",
		}),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetWebhookURL returns the extraction service endpoint
func (c *AppConfig) GetWebhookURL() string {
	return c.WebhookURL
}

// GetWebhookTimeout returns the extraction call timeout, zero meaning none
func (c *AppConfig) GetWebhookTimeout() time.Duration {
	return c.WebhookTimeout
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSessionTTL returns how long an idle session is kept
func (c *AppConfig) GetSessionTTL() time.Duration {
	return c.SessionTTL
}

// GetDefaultDarkMode returns the theme new sessions start with
func (c *AppConfig) GetDefaultDarkMode() bool {
	return c.DefaultDarkMode
}

// GetCORSAllowedOrigins returns the origins allowed to call the JSON API
func (c *AppConfig) GetCORSAllowedOrigins() []string {
	return c.CORSAllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
