package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for the identifier of one invocation.
	FieldRunID = "run_id"
	// FieldInput is the standardized structured logging key for the input path being scanned.
	FieldInput = "input"
)

type inputKey struct{}

// WithInput records the input path on ctx for later log lines.
func WithInput(ctx context.Context, path string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, inputKey{}, path)
}

// InputFromContext returns the input path stored by WithInput.
func InputFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	path, ok := ctx.Value(inputKey{}).(string)
	if !ok || strings.TrimSpace(path) == "" {
		return "", false
	}
	return path, true
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if path, ok := InputFromContext(ctx); ok {
		return logger.With(String(FieldInput, path))
	}
	return logger
}
