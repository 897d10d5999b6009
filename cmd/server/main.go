// Package main implements the entry point for the TinyTasks API server,
// a minimal task-tracking service backed by PostgreSQL.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/tinytasks/tinytasks-api/internal/config"
	"github.com/tinytasks/tinytasks-api/internal/platform/logger"
)

// Service identification reported on the root endpoint.
const (
	serviceName    = "tinytasks-api"
	serviceVersion = "0.1.0"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a migration command (up, down, status) and exit",
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	appLogger.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	if *migrateCmd != "" {
		if err := runMigrations(cfg, *migrateCmd); err != nil {
			appLogger.Error("migration failed",
				slog.String("command", *migrateCmd),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to set up database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		appLogger.Error("failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		appLogger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
