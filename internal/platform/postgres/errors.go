// Package postgres provides PostgreSQL-backed implementations of the store
// interfaces.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tinytasks/tinytasks-api/internal/store"
)

// PostgreSQL error codes relevant to this store.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolationCode    = "23505"
	pgConnectionExceptionCls = "08"
)

// MapError translates low-level database errors into store sentinel errors so
// that driver-specific messages never cross the store boundary. Errors that
// have no sentinel mapping are wrapped with the failed operation name only.
func MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrTaskNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", operation, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w", operation, store.ErrUnavailable)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == pgConnectionExceptionCls:
			return fmt.Errorf("%s: %w", operation, store.ErrUnavailable)
		case pgErr.Code == pgUniqueViolationCode:
			// The only unique constraint on tasks is the primary key; a
			// collision on a fresh UUID indicates a retryable server fault,
			// not caller error.
			return fmt.Errorf("%s: duplicate key", operation)
		}
	}

	return fmt.Errorf("%s: database error", operation)
}
