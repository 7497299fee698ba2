// Package logger is the process-wide zap logger. Logs go to stderr so
// stdout stays free for status lines and command output.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is a no-op until Initialize runs, so packages may log from tests
	Logger = zap.NewNop().Sugar()
	// JSONOutput records whether the JSON encoder is active
	JSONOutput bool
)

// Initialize sets up the global logger on stderr
func Initialize(jsonOutput bool, verbosity int) error {
	return InitializeWithWriter(os.Stderr, jsonOutput, verbosity)
}

// InitializeWithWriter sets up the global logger writing to w: production
// JSON with jsonOutput, the minimal console encoder otherwise.
func InitializeWithWriter(w io.Writer, jsonOutput bool, verbosity int) error {
	JSONOutput = jsonOutput
	applyEnv()

	var encoder zapcore.Encoder = newMinimalEncoder()
	if jsonOutput {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(VerbosityToLevel(verbosity)))
	Logger = zap.New(core).Sugar()
	return nil
}

// applyEnv honours LLMDIAGRAM_LOG_THEME and NO_COLOR; the configured
// log.theme is applied later through SetTheme
func applyEnv() {
	if theme := os.Getenv("LLMDIAGRAM_LOG_THEME"); theme != "" {
		SetTheme(theme)
	}
	if os.Getenv("NO_COLOR") != "" {
		SetColor(false)
	}
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	_ = Logger.Sync()
}
