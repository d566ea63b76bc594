package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from ctx.
// If no logger is attached a disabled logger is returned.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithFile creates a child logger with a file field.
func WithFile(ctx context.Context, path string) context.Context {
	logger := FromContext(ctx).With().Str("file", path).Logger()
	return WithContext(ctx, logger)
}
