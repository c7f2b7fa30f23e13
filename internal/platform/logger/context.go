package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type so no other package can collide with
// the logger key.
type contextKey struct{}

var loggerKey = contextKey{}

// WithLogger returns a context carrying the given logger. Middleware uses
// it to attach a request-scoped logger with trace attributes.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext returns the logger stored in the context, or the process
// default logger when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault returns the logger stored in the context, or the
// supplied fallback. Services pass their component logger as the
// fallback so logs stay attributed outside of request handling.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
