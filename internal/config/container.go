package config

import (
	"fmt"

	"document-scanner/internal/domain"
	"document-scanner/internal/render"
	"document-scanner/internal/service"
	"document-scanner/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config           domain.Config
	Logger           domain.Logger
	SessionStore     *service.MemorySessionStore
	ExtractionClient domain.ExtractionClient
	SessionService   domain.SessionService
	Exporter         domain.Exporter
	Renderer         *render.PageRenderer
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	renderer, err := render.NewPageRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize page renderer: %w", err)
	}

	// Extraction and sessions
	client := service.NewWebhookExtractionClient(config.GetWebhookURL(), config.GetWebhookTimeout(), appLogger)
	store := service.NewMemorySessionStore(config.GetSessionTTL(), config.GetDefaultDarkMode())
	sessions := service.NewSessionService(store, client, appLogger)

	return &Container{
		Config:           config,
		Logger:           appLogger,
		SessionStore:     store,
		ExtractionClient: client,
		SessionService:   sessions,
		Exporter:         service.NewXLSXExporter(appLogger),
		Renderer:         renderer,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
