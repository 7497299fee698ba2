package logger

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// Verbosity is the -v flag count
const (
	VerbosityUser  = 0 // diagnostics, result path, errors
	VerbosityInfo  = 1 // -v: stage logs, graphviz version
	VerbosityDebug = 2 // -vv: config values, timing
	VerbosityTrace = 3 // -vvv: external command lines
	VerbosityAll   = 4 // -vvvv: full DOT source
)

// OutputCategory selects a kind of log output independently of its severity
type OutputCategory int

const (
	OutputRendererInfo OutputCategory = iota
	OutputTiming
	OutputConfig
	OutputCommands
	OutputDataDump
)

var categories = [...]struct {
	name     string
	minLevel int
}{
	OutputRendererInfo: {"renderer-info", VerbosityInfo},
	OutputTiming:       {"timing", VerbosityDebug},
	OutputConfig:       {"config", VerbosityDebug},
	OutputCommands:     {"commands", VerbosityTrace},
	OutputDataDump:     {"data-dump", VerbosityAll},
}

func known(c OutputCategory) bool { return c >= 0 && int(c) < len(categories) }

// ShouldOutput reports whether category is shown at verbosity. Unknown
// categories need the highest verbosity.
func ShouldOutput(verbosity int, category OutputCategory) bool {
	if !known(category) {
		return verbosity >= VerbosityAll
	}
	return verbosity >= categories[category].minLevel
}

// CategoryName returns the category's name, or "unknown"
func CategoryName(category OutputCategory) string {
	if !known(category) {
		return "unknown"
	}
	return categories[category].name
}

// VerbosityToLevel maps the -v count to the zap level: none shows warnings
// and errors, -v adds info, -vv and above add debug.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// TimingFields returns the duration_ms field for a step that began at start,
// or nothing below the timing verbosity.
func TimingFields(verbosity int, start time.Time) []interface{} {
	if !ShouldOutput(verbosity, OutputTiming) {
		return nil
	}
	return []interface{}{FieldDurationMS, time.Since(start).Milliseconds()}
}
