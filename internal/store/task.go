package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/tinytasks/tinytasks-api/internal/domain"
)

// Pagination bounds for listing tasks.
const (
	// DefaultListLimit is used when the caller does not supply a limit.
	DefaultListLimit = 50

	// MaxListLimit is the largest page size a caller may request.
	MaxListLimit = 200
)

// ListTasksParams describes the filtering and windowing applied to a task
// listing. A nil Done means "no completion filter". A zero Limit means
// "use the default"; anything else must be within [1, MaxListLimit].
type ListTasksParams struct {
	Done   *bool
	Limit  int
	Offset int
}

// Normalize fills in defaults for unset fields and validates the result.
// Returns ErrInvalidListParams if the limit or offset is out of range.
func (p ListTasksParams) Normalize() (ListTasksParams, error) {
	if p.Limit == 0 {
		p.Limit = DefaultListLimit
	}
	if p.Limit < 1 || p.Limit > MaxListLimit {
		return p, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidListParams, MaxListLimit)
	}
	if p.Offset < 0 {
		return p, fmt.Errorf("%w: offset must not be negative", ErrInvalidListParams)
	}
	return p, nil
}

// TaskStore defines the persistence operations for tasks.
// Implementations must ensure each call is atomic with respect to concurrent
// callers; multi-statement workflows are composed by binding the store to a
// transaction via WithTx.
type TaskStore interface {
	// Create persists a new task. The task must already carry a valid ID,
	// title, and timestamps.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if no task with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// GetByIDForUpdate retrieves a task with a row-level lock
	// (SELECT ... FOR UPDATE). It must be called on a store bound to a
	// transaction; concurrent updates to the same task then serialize on the
	// lock instead of overwriting each other's reads.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List returns tasks ordered by creation time descending, with ties broken
	// by ID descending so that paging over equal timestamps is stable.
	// Params are normalized before use.
	List(ctx context.Context, params ListTasksParams) ([]*domain.Task, error)

	// Update saves the mutable fields (title, done, updated_at) of an existing
	// task. Returns ErrTaskNotFound if no task with that ID exists.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes a task.
	// Returns ErrTaskNotFound if no task with that ID exists.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a copy of the store bound to the given transaction, so a
	// read-modify-write sequence can run atomically.
	WithTx(tx *sql.Tx) TaskStore
}
