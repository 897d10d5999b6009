// Package domain contains the core entities and validation rules of the
// TinyTasks service, independent of storage and transport concerns.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxTitleLength is the maximum number of characters allowed in a task title
// after leading and trailing whitespace has been trimmed.
const MaxTitleLength = 140

// Task represents a single unit of work tracked by the service.
// IDs and timestamps are always assigned server-side; CreatedAt never changes
// after creation and UpdatedAt is refreshed on every successful mutation.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskPatch describes a partial update to a task. A nil field means
// "leave unchanged"; this distinguishes an omitted field from a zero value.
type TaskPatch struct {
	Title *string
	Done  *bool
}

// IsEmpty reports whether the patch supplies no fields.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Done == nil
}

// NewTask creates a new Task with the given title.
// The title is trimmed and validated, a new UUID is generated, the completion
// flag starts false, and both timestamps are set to the current time.
// Returns a validation error if the trimmed title is empty or too long.
func NewTask(title string) (*Task, error) {
	trimmed, err := ValidateTitle(title)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &Task{
		ID:        uuid.New(),
		Title:     trimmed,
		Done:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return task, nil
}

// ValidateTitle trims leading and trailing whitespace from the given title and
// validates the result. Returns the trimmed title, or a validation error if it
// is empty or exceeds MaxTitleLength. Length is counted in Unicode code points
// so multi-byte titles are not penalized.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrEmptyTitle
	}
	if len([]rune(trimmed)) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return trimmed, nil
}

// Validate checks that the Task satisfies the persistence invariants.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if _, err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return ErrValidation
	}
	return nil
}

// Apply applies a partial update to the task, mutating only the supplied
// fields and refreshing UpdatedAt. An empty patch is rejected with
// ErrEmptyPatch and a supplied title is trimmed and validated exactly as in
// NewTask. The task is left unmodified when an error is returned.
func (t *Task) Apply(patch TaskPatch) error {
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}

	// Validate everything before mutating anything, so a rejected patch
	// leaves the task untouched.
	if patch.Title != nil {
		title, err := ValidateTitle(*patch.Title)
		if err != nil {
			return err
		}
		t.Title = title
	}
	if patch.Done != nil {
		t.Done = *patch.Done
	}
	t.UpdatedAt = time.Now().UTC()

	return nil
}
