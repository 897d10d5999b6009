package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasksParams_Normalize(t *testing.T) {
	done := true

	tests := []struct {
		name    string
		params  ListTasksParams
		want    ListTasksParams
		wantErr bool
	}{
		{
			name:   "zero_value_gets_defaults",
			params: ListTasksParams{},
			want:   ListTasksParams{Limit: DefaultListLimit, Offset: 0},
		},
		{
			name:   "explicit_values_preserved",
			params: ListTasksParams{Done: &done, Limit: 10, Offset: 20},
			want:   ListTasksParams{Done: &done, Limit: 10, Offset: 20},
		},
		{
			name:   "limit_at_lower_bound",
			params: ListTasksParams{Limit: 1},
			want:   ListTasksParams{Limit: 1},
		},
		{
			name:   "limit_at_upper_bound",
			params: ListTasksParams{Limit: MaxListLimit},
			want:   ListTasksParams{Limit: MaxListLimit},
		},
		{
			name:    "limit_above_maximum",
			params:  ListTasksParams{Limit: MaxListLimit + 1},
			wantErr: true,
		},
		{
			name:    "negative_limit",
			params:  ListTasksParams{Limit: -1},
			wantErr: true,
		},
		{
			name:    "negative_offset",
			params:  ListTasksParams{Offset: -5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.params.Normalize()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidListParams)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.False(t, IsNotFoundError(ErrInvalidListParams))
	assert.False(t, IsNotFoundError(nil))
}
