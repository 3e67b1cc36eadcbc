package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type loggerKey struct{}

// WithLogger stores logger on ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored on ctx, or fallback when none is set.
func FromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}

// WithRunID tags logger with a fresh run id and stores it on ctx.
func WithRunID(ctx context.Context, logger *slog.Logger) (context.Context, string) {
	id := uuid.NewString()
	if logger != nil {
		logger = logger.With(slog.String(FieldRunID, id))
	}
	return WithLogger(ctx, logger), id
}
