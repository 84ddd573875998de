// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Context key types for storing values in context
type contextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
	// ViewIDKey is the context key for the hosting view ID
	ViewIDKey contextKey = "view_id"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter creates a logger that writes to w. Tests use io.Discard.
func NewWithWriter(env string, w io.Writer) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return NewWithWriter("production", io.Discard)
}

// WithContext returns a logger with request_id and view_id extracted from ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	newLogger := l

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		newLogger = newLogger.WithRequestID(requestID)
	}

	if viewID, ok := ctx.Value(ViewIDKey).(string); ok && viewID != "" {
		newLogger = &Logger{
			Logger: newLogger.With(slog.String("view_id", viewID)),
		}
	}

	return newLogger
}

// WithRequestID returns a logger with request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// HTTPError logs an HTTP error
func (l *Logger) HTTPError(method, path string, status int, err error, clientIP string) {
	l.Error("http_error",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
		slog.String("client_ip", clientIP),
	)
}

// Classification logs the outcome of classifying a raw ID. The raw ID itself
// is never logged.
func (l *Logger) Classification(country string, valid bool) {
	if valid {
		l.Info("id_classified",
			slog.String("country", country),
			slog.Bool("valid", valid),
		)
		return
	}
	l.Info("id_format_mismatch", slog.Bool("valid", valid))
}

// LookupFailed logs a failed country metadata lookup
func (l *Logger) LookupFailed(country string, err error) {
	l.Error("country_lookup_failed",
		slog.String("country", country),
		slog.String("error", err.Error()),
	)
}

// StaleDiscarded logs a pipeline result dropped because a newer lookup started
func (l *Logger) StaleDiscarded(viewID string, generation, current uint64) {
	l.Warn("stale_result_discarded",
		slog.String("view_id", viewID),
		slog.Uint64("generation", generation),
		slog.Uint64("current", current),
	)
}

// RateLimitExceeded logs rate limit events
func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}
