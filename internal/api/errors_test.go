package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tinytasks/tinytasks-api/internal/domain"
	"github.com/tinytasks/tinytasks-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "empty_patch_is_bad_request",
			err:  domain.ErrEmptyPatch,
			want: http.StatusBadRequest,
		},
		{
			name: "empty_title_is_unprocessable",
			err:  domain.ErrEmptyTitle,
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "title_too_long_is_unprocessable",
			err:  domain.ErrTitleTooLong,
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid_list_params_is_unprocessable",
			err:  store.ErrInvalidListParams,
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "wrapped_list_params_error",
			err:  fmt.Errorf("%w: limit must be between 1 and 200", store.ErrInvalidListParams),
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "task_not_found",
			err:  store.ErrTaskNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "store_unavailable",
			err:  store.ErrUnavailable,
			want: http.StatusServiceUnavailable,
		},
		{
			name: "unknown_error_is_internal",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil_error",
			err:  nil,
			want: "An unexpected error occurred",
		},
		{
			name: "validation_errors_pass_through",
			err:  domain.ErrEmptyTitle,
			want: domain.ErrEmptyTitle.Error(),
		},
		{
			name: "task_not_found",
			err:  store.ErrTaskNotFound,
			want: "Task not found",
		},
		{
			name: "store_unavailable",
			err:  store.ErrUnavailable,
			want: "Service temporarily unavailable",
		},
		{
			name: "internal_detail_is_hidden",
			err:  errors.New("pq: connection refused at 10.0.0.5"),
			want: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestGetSafeErrorMessage_MentionsTitleField(t *testing.T) {
	// Clients rely on the validation reason naming the offending field.
	assert.Contains(t, GetSafeErrorMessage(domain.ErrEmptyTitle), "title")
	assert.Contains(t, GetSafeErrorMessage(domain.ErrTitleTooLong), "title")
}
