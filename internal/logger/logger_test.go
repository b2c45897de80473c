package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupLevel(t *testing.T) {
	require.NoError(t, Setup("debug"))
	require.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	require.NoError(t, Setup("warn"))
	require.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestSetupBadLevel(t *testing.T) {
	err := Setup("loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), "loud")
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	require.Same(t, slog.Default(), Get(ctx))
	lg := slog.Default().With("component", "codec")
	require.Same(t, lg, Get(With(ctx, lg)))
}
