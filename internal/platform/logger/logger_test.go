package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	// Restore the default logger after mutating it.
	original := slog.Default()
	defer slog.SetDefault(original)

	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug_level", logLevel: "debug"},
		{name: "info_level", logLevel: "info"},
		{name: "warn_level", logLevel: "warn"},
		{name: "error_level", logLevel: "error"},
		{name: "case_insensitive", logLevel: "INFO"},
		{name: "invalid_falls_back_to_info", logLevel: "nonsense"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := Setup(tt.logLevel)
			require.NotNil(t, log)
			assert.Equal(t, log, slog.Default())
		})
	}
}

func TestFromContext(t *testing.T) {
	stored := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := WithLogger(context.Background(), stored)
	assert.Equal(t, stored, FromContext(ctx))

	// Without a stored logger the process default is returned.
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestFromContextOrDefault(t *testing.T) {
	stored := slog.New(slog.NewTextHandler(os.Stderr, nil))
	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := WithLogger(context.Background(), stored)
	assert.Equal(t, stored, FromContextOrDefault(ctx, fallback))
	assert.Equal(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.Equal(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}
