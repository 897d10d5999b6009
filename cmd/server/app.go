package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tinytasks/tinytasks-api/internal/config"
	"github.com/tinytasks/tinytasks-api/internal/platform/metrics"
	"github.com/tinytasks/tinytasks-api/internal/platform/postgres"
	"github.com/tinytasks/tinytasks-api/internal/service"
	"github.com/tinytasks/tinytasks-api/internal/store"
)

// application holds the shared application dependencies to simplify wiring
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore   store.TaskStore
	taskService service.TaskService
	metrics     *metrics.Metrics
}

// newApplication creates a new application instance with all dependencies
// initialized. Configuration, logger, and database connection must already be
// established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	var err error
	app.taskService, err = service.NewTaskService(db, app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.metrics = metrics.New()

	logger.Info("application initialized")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection",
				slog.String("error", err.Error()))
		}
	}

	app.logger.Info("application shutdown completed")
}
