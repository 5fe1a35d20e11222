package plycloud

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with plycloud-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// LogLoad logs a load operation.
func (l *Logger) LogLoad(ctx context.Context, path string, vertices, properties int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"path", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "load completed",
			"path", path,
			"vertices", vertices,
			"properties", properties,
		)
	}
}

// LogSave logs a save operation.
func (l *Logger) LogSave(ctx context.Context, path string, vertices, properties int, binary bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"path", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "save completed",
			"path", path,
			"vertices", vertices,
			"properties", properties,
			"binary", binary,
		)
	}
}

// LogBatchLoad logs a LoadAll call.
func (l *Logger) LogBatchLoad(ctx context.Context, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch load aborted",
			"files", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch load completed",
			"files", count,
		)
	}
}
