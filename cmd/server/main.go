package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"document-scanner/internal/config"
	"document-scanner/internal/handler"
	"document-scanner/internal/service"

	"github.com/joho/godotenv"
)

const (
	sessionSweepInterval = time.Minute
	shutdownTimeout      = 10 * time.Second
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	if syncer, ok := container.Logger.(interface{ Sync() error }); ok {
		defer func() { _ = syncer.Sync() }()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.RunSessionJanitor(ctx, container.SessionStore, sessionSweepInterval, container.Logger)

	// Handlers
	scannerHandler := handler.NewScannerHandler(
		container.SessionService,
		container.Renderer,
		container.Exporter,
		container.Logger,
	)

	apiHandler := handler.NewAPIHandler(
		container.ExtractionClient,
		container.Logger,
	)

	sessionMiddleware := handler.NewSessionMiddleware(
		container.SessionService,
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		scannerHandler,
		apiHandler,
		sessionMiddleware.Middleware,
		container.Logger,
		container.Config.GetCORSAllowedOrigins(),
	)

	// start server
	server := &http.Server{
		Addr:              ":" + container.Config.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening",
			"address", server.Addr,
			"webhook_url", container.Config.GetWebhookURL(),
			"webhook_timeout", container.Config.GetWebhookTimeout().String(),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
}
