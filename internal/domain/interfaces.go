package domain

import "time"

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetWebhookURL() string
	GetWebhookTimeout() time.Duration
	GetLogLevel() string
	GetSessionTTL() time.Duration
	GetDefaultDarkMode() bool
	GetCORSAllowedOrigins() []string
}

// Exporter turns extracted fields into a downloadable workbook.
type Exporter interface {
	ExportXLSX(result *ExtractionResult) ([]byte, error)
}
