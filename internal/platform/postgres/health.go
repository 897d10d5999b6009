package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tinytasks/tinytasks-api/internal/store"
)

// healthCheckTimeout bounds the probe so an unreachable database fails fast
// instead of tying up the health endpoint.
const healthCheckTimeout = 5 * time.Second

// CheckHealth verifies that the database is reachable by executing a trivial
// query. Returns store.ErrUnavailable (with no driver detail) if the probe
// fails.
func CheckHealth(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("health check: %w", store.ErrUnavailable)
	}
	return nil
}
