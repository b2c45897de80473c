// Package logger configures the process wide slog logger.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Setup installs a JSON handler at the given level as the default logger.
func Setup(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("logger: bad level %q: %w", level, err)
	}
	slog.SetDefault(
		slog.New(
			slog.NewJSONHandler(
				os.Stderr,
				&slog.HandlerOptions{
					Level: lvl,
				},
			),
		),
	)
	return nil
}

type loggerKey struct{}

// With attaches a logger to the context.
func With(ctx context.Context, lg *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, lg)
}

// Get returns the context logger, falling back to the default.
func Get(ctx context.Context) *slog.Logger {
	if lg, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return lg
	}
	return slog.Default()
}

// Fail logs and exits. Only for unrecoverable command level errors.
func Fail(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
