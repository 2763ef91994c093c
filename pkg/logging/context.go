package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger carried by ctx, or the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// With returns a copy of ctx whose logger carries key=value.
func With(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, &logger)
}

// WithTable tags the logger with the table being merged.
func WithTable(ctx context.Context, table string) context.Context {
	return With(ctx, "table", table)
}

// WithFeed tags the logger with a feed directory.
func WithFeed(ctx context.Context, feed string) context.Context {
	return With(ctx, "feed", feed)
}

// WithOperation tags the logger with the entry point in use.
func WithOperation(ctx context.Context, operation string) context.Context {
	return With(ctx, "operation", operation)
}
