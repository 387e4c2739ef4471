// Package logger provides structured logging setup using Go's slog package.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog with printf-style helpers used across the service.
type Logger struct {
	l *slog.Logger
}

// New creates a JSON logger at the given level with correlation ID support.
func New(level string) *Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, handlerOpts)

	// Wrap with correlation handler to auto-inject correlation_id from context
	handler = NewCorrelationHandler(handler)

	return &Logger{l: slog.New(handler)}
}

func (l *Logger) Debug(format string, args ...any) {
	l.l.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.l.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.l.Error(fmt.Sprintf(format, args...))
}

// Fatal logs the error and terminates the process.
func (l *Logger) Fatal(err error) {
	l.l.Error(err.Error())
	os.Exit(1)
}

// ErrorCtx logs with context so correlation_id is attached.
func (l *Logger) ErrorCtx(ctx context.Context, format string, args ...any) {
	l.l.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

// InfoCtx logs with context so correlation_id is attached.
func (l *Logger) InfoCtx(ctx context.Context, format string, args ...any) {
	l.l.InfoContext(ctx, fmt.Sprintf(format, args...))
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
