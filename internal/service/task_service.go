// Package service implements the application's use cases on top of the domain
// and store layers. Every mutation runs inside a single database transaction.
package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tinytasks/tinytasks-api/internal/domain"
	"github.com/tinytasks/tinytasks-api/internal/platform/logger"
	"github.com/tinytasks/tinytasks-api/internal/store"
)

// TaskService provides task lifecycle operations.
type TaskService interface {
	// Create validates the title and persists a new task.
	Create(ctx context.Context, title string) (*domain.Task, error)

	// List returns tasks newest-first, optionally filtered by completion and
	// windowed by limit/offset.
	List(ctx context.Context, params store.ListTasksParams) ([]*domain.Task, error)

	// Get retrieves a single task by ID.
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update applies a partial update to a task and returns the updated task.
	Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)

	// Delete permanently removes a task.
	Delete(ctx context.Context, id uuid.UUID) error
}

// taskService is the concrete TaskService implementation.
type taskService struct {
	db     *sql.DB
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService with the given dependencies.
// The database handle is required so mutations can open their own
// transactions; reads go through the store directly.
func NewTaskService(db *sql.DB, tasks store.TaskStore, log *slog.Logger) (TaskService, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if tasks == nil {
		return nil, fmt.Errorf("task store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &taskService{
		db:     db,
		tasks:  tasks,
		logger: log.With(slog.String("component", "task_service")),
	}, nil
}

// Create implements TaskService.Create.
// Validation happens before the transaction is opened so bad input never
// touches the database.
func (s *taskService) Create(ctx context.Context, title string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title)
	if err != nil {
		log.Debug("rejected task creation",
			slog.String("error", err.Error()))
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.tasks.WithTx(tx).Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// List implements TaskService.List.
// Listing is a single read; no transaction is needed.
func (s *taskService) List(
	ctx context.Context,
	params store.ListTasksParams,
) ([]*domain.Task, error) {
	return s.tasks.List(ctx, params)
}

// Get implements TaskService.Get.
func (s *taskService) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// Update implements TaskService.Update.
// The read-modify-write runs in one transaction with the row locked, so two
// concurrent updates to the same task serialize and each sees the other's
// committed fields. An empty patch is rejected before any database work.
func (s *taskService) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.tasks.WithTx(tx)

		task, err := txStore.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := task.Apply(patch); err != nil {
			return err
		}

		if err := txStore.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete implements TaskService.Delete.
// Deleting an already-deleted task reports not found; callers treat that as
// the expected second half of delete idempotency.
func (s *taskService) Delete(ctx context.Context, id uuid.UUID) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.tasks.WithTx(tx).Delete(ctx, id)
	})
}
