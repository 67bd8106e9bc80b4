// Package main implements the entry point for the params-api server,
// a teaching service whose endpoints each demonstrate one feature of
// HTTP request parameter handling and validation.
package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/params-api/internal/config"
	"github.com/phrazzld/params-api/internal/platform/logger"
)

// application bundles the process-wide dependencies. Everything here is
// initialized once at startup and read-only afterwards.
type application struct {
	config *config.Config
	logger *slog.Logger
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router, err := app.setupRouter()
	if err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	if err := app.startHTTPServer(router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the assembled application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return &application{config: cfg, logger: appLogger}, nil
}
