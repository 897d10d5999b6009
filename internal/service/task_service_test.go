package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinytasks/tinytasks-api/internal/domain"
	"github.com/tinytasks/tinytasks-api/internal/store"
)

// mockTaskStore implements store.TaskStore with overridable functions.
type mockTaskStore struct {
	createFn       func(ctx context.Context, task *domain.Task) error
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	getForUpdateFn func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	listFn         func(ctx context.Context, params store.ListTasksParams) ([]*domain.Task, error)
	updateFn       func(ctx context.Context, task *domain.Task) error
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

func (m *mockTaskStore) GetByIDForUpdate(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Task, error) {
	if m.getForUpdateFn != nil {
		return m.getForUpdateFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

func (m *mockTaskStore) List(
	ctx context.Context,
	params store.ListTasksParams,
) ([]*domain.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx, params)
	}
	return []*domain.Task{}, nil
}

func (m *mockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

func newTestService(t *testing.T, tasks store.TaskStore) TaskService {
	t.Helper()
	// The zero-value DB is never used by the paths under test; mutations that
	// reach BeginTx are covered by integration-style tests against a real
	// database.
	svc, err := NewTaskService(&sql.DB{}, tasks, nil)
	require.NoError(t, err)
	return svc
}

func TestNewTaskService(t *testing.T) {
	tests := []struct {
		name    string
		db      *sql.DB
		tasks   store.TaskStore
		wantErr bool
	}{
		{name: "valid", db: &sql.DB{}, tasks: &mockTaskStore{}},
		{name: "nil_db", db: nil, tasks: &mockTaskStore{}, wantErr: true},
		{name: "nil_store", db: &sql.DB{}, tasks: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewTaskService(tt.db, tt.tasks, nil)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestTaskService_CreateRejectsInvalidTitleBeforeTransaction(t *testing.T) {
	storeCalled := false
	tasks := &mockTaskStore{
		createFn: func(ctx context.Context, task *domain.Task) error {
			storeCalled = true
			return nil
		},
	}
	svc := newTestService(t, tasks)

	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{name: "empty", title: "", wantErr: domain.ErrEmptyTitle},
		{name: "whitespace_only", title: "   ", wantErr: domain.ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := svc.Create(context.Background(), tt.title)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, task)
			assert.False(t, storeCalled)
		})
	}
}

func TestTaskService_UpdateRejectsEmptyPatchBeforeTransaction(t *testing.T) {
	storeCalled := false
	tasks := &mockTaskStore{
		getForUpdateFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			storeCalled = true
			return nil, store.ErrTaskNotFound
		},
	}
	svc := newTestService(t, tasks)

	task, err := svc.Update(context.Background(), uuid.New(), domain.TaskPatch{})

	assert.ErrorIs(t, err, domain.ErrEmptyPatch)
	assert.Nil(t, task)
	assert.False(t, storeCalled)
}

func TestTaskService_ListDelegatesToStore(t *testing.T) {
	done := true
	want := []*domain.Task{{ID: uuid.New(), Title: "a", Done: true}}
	var gotParams store.ListTasksParams

	tasks := &mockTaskStore{
		listFn: func(ctx context.Context, params store.ListTasksParams) ([]*domain.Task, error) {
			gotParams = params
			return want, nil
		},
	}
	svc := newTestService(t, tasks)

	got, err := svc.List(context.Background(), store.ListTasksParams{Done: &done, Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, &done, gotParams.Done)
	assert.Equal(t, 5, gotParams.Limit)
}

func TestTaskService_GetDelegatesToStore(t *testing.T) {
	id := uuid.New()
	want := &domain.Task{ID: id, Title: "existing"}

	tasks := &mockTaskStore{
		getByIDFn: func(ctx context.Context, gotID uuid.UUID) (*domain.Task, error) {
			assert.Equal(t, id, gotID)
			return want, nil
		},
	}
	svc := newTestService(t, tasks)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTaskService_GetPropagatesNotFound(t *testing.T) {
	svc := newTestService(t, &mockTaskStore{})

	task, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.Nil(t, task)
}
