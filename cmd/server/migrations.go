package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/tinytasks/tinytasks-api/internal/config"
	"github.com/tinytasks/tinytasks-api/migrations"
)

// runMigrations executes the given goose command (up, down, status) against
// the configured database and returns when it completes. Migrations are
// embedded in the binary, so no on-disk migrations directory is needed.
func runMigrations(cfg *config.Config, command string) error {
	// A correlation ID ties together all log lines of one migration run.
	correlationID := uuid.New().String()
	migrationLogger := slog.Default().With(
		slog.String("correlation_id", correlationID),
		slog.String("component", "migrations"),
		slog.String("command", command),
	)

	startTime := time.Now()
	migrationLogger.Info("starting migration operation")

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			migrationLogger.Error("error closing database connection",
				slog.String("error", err.Error()))
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		return fmt.Errorf("unknown migration command %q (expected up, down, or status)", command)
	}
	if err != nil {
		return fmt.Errorf("goose %s failed: %w", command, err)
	}

	migrationLogger.Info("migration operation completed",
		slog.Int64("duration_ms", time.Since(startTime).Milliseconds()))
	return nil
}
