package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	FieldRunID     = "run_id"
	FieldComponent = "component"

	FieldPath    = "path"
	FieldFormat  = "format"
	FieldBinary  = "binary"
	FieldArgs    = "args"
	FieldVersion = "version"

	FieldFont    = "font"
	FieldMatches = "matches"

	FieldClusters = "clusters"
	FieldNodes    = "nodes"
	FieldEdges    = "edges"

	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)

type contextKey string

const runIDKey contextKey = "logger_run_id"

// WithRunID adds a run ID to the context for logging
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}
	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		fields = append(fields, FieldRunID, runID)
	}
	return fields
}

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	func NewGraphviz(cfg am.RenderConfig) *Graphviz {
//	    return &Graphviz{logger: logger.ComponentLogger("render.graphviz")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// LoggerFromContext returns l with the context's run fields attached.
func LoggerFromContext(ctx context.Context, l *zap.SugaredLogger) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}
