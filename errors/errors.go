// Package errors provides error handling for llmdiagram.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints printed by the CLI on failure
//
// Usage:
//
//	// Wrap with context
//	if err := cmd.Run(); err != nil {
//	    return errors.Wrap(err, "graphviz render failed")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "install graphviz")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
	Mark        = crdb.Mark
)

// Error inspection
var (
	Is             = crdb.Is
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors. Use with errors.Is(); attach with errors.Mark() to keep
// the original cause in the message.
var (
	// ErrRendererUnavailable indicates the layout engine binary could not be run
	ErrRendererUnavailable = New("renderer unavailable")

	// ErrInvalidDiagram indicates a diagram description failed validation
	ErrInvalidDiagram = New("invalid diagram")

	// ErrInvalidConfig indicates a configuration value is out of range
	ErrInvalidConfig = New("invalid configuration")
)

// IsRendererUnavailable checks if an error is or is marked as ErrRendererUnavailable
func IsRendererUnavailable(err error) bool {
	return err != nil && Is(err, ErrRendererUnavailable)
}

// IsInvalidDiagram checks if an error is or is marked as ErrInvalidDiagram
func IsInvalidDiagram(err error) bool {
	return err != nil && Is(err, ErrInvalidDiagram)
}

// NewInvalidDiagramError creates an invalid-diagram error with a formatted message
func NewInvalidDiagramError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidDiagram)
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidConfig)
}

// Hint returns the user-facing hints attached to err joined as one line each,
// or "" if there are none.
func Hint(err error) string {
	if err == nil {
		return ""
	}
	return FlattenHints(err)
}
