// Package observability provides structured logging and metrics for the
// benchmark harness.
package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger provides structured logging with run and case correlation.
//
// Built on Go's slog package:
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - JSON output for machine consumption, text for interactive runs
//   - Automatic run_id / suite / case_id correlation from context
type Logger struct {
	logger *slog.Logger
	config LogConfig
}

// LogConfig configures logging behavior.
type LogConfig struct {
	// Level sets the minimum log level: "debug", "info", "warn", "error"
	Level string `yaml:"level" json:"level"`

	// Format specifies output format: "json" or "text"
	Format string `yaml:"format" json:"format"`

	// Output is the writer for log output (defaults to os.Stderr, leaving
	// stdout free for report rendering)
	Output io.Writer `yaml:"-" json:"-"`
}

// ContextKey is the type for context keys used in logging.
type ContextKey string

const (
	// RunIDKey is the context key for the benchmark run id.
	RunIDKey ContextKey = "run_id"

	// SuiteKey is the context key for the suite name.
	SuiteKey ContextKey = "suite"

	// CaseIDKey is the context key for the current case id.
	CaseIDKey ContextKey = "case_id"
)

// NewLogger creates a structured logger with the given configuration.
//
// If config.Output is nil, logs are written to os.Stderr.
// If config.Level is empty or invalid, defaults to "info".
// If config.Format is empty, defaults to "text".
func NewLogger(config LogConfig) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	if config.Level == "" {
		config.Level = "info"
	}
	if config.Format == "" {
		config.Format = "text"
	}

	var level slog.Level
	switch strings.ToLower(config.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(config.Output, opts)
	} else {
		handler = slog.NewTextHandler(config.Output, opts)
	}

	return &Logger{logger: slog.New(handler), config: config}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelDebug, msg, args...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warn-level message with optional key-value pairs.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelError, msg, args...)
}

func (l *Logger) log(ctx context.Context, level slog.Level, msg string, args ...any) {
	args = append(args, contextAttrs(ctx)...)
	l.logger.Log(ctx, level, msg, args...)
}

func contextAttrs(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var attrs []any
	if runID, ok := ctx.Value(RunIDKey).(string); ok && runID != "" {
		attrs = append(attrs, slog.String(string(RunIDKey), runID))
	}
	if suite, ok := ctx.Value(SuiteKey).(string); ok && suite != "" {
		attrs = append(attrs, slog.String(string(SuiteKey), suite))
	}
	if caseID, ok := ctx.Value(CaseIDKey).(string); ok && caseID != "" {
		attrs = append(attrs, slog.String(string(CaseIDKey), caseID))
	}
	return attrs
}
