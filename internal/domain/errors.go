package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the base error for all domain validation failures.
// Callers can use errors.Is(err, ErrValidation) to distinguish rejected
// input from infrastructure failures.
var ErrValidation = errors.New("validation failed")

// Validation errors for Task fields.
var (
	// ErrEmptyTitle indicates the title was empty or whitespace-only after trimming.
	ErrEmptyTitle = fmt.Errorf("%w: title must not be empty", ErrValidation)

	// ErrTitleTooLong indicates the trimmed title exceeds MaxTitleLength characters.
	ErrTitleTooLong = fmt.Errorf(
		"%w: title must be at most %d characters",
		ErrValidation,
		MaxTitleLength,
	)

	// ErrEmptyPatch indicates an update request that supplies no fields at all.
	// An empty patch is rejected rather than treated as a no-op so that callers
	// sending a malformed payload get a clear signal instead of a silent success.
	ErrEmptyPatch = fmt.Errorf("%w: at least one of title or done must be provided", ErrValidation)

	// ErrEmptyTaskID indicates a task with a nil UUID, which should never be
	// persisted.
	ErrEmptyTaskID = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
)
