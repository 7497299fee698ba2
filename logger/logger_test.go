package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitializeWithWriter(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
		logInfo    bool
	}{
		{name: "console default hides info", jsonOutput: false, verbosity: VerbosityUser, logInfo: false},
		{name: "console -v shows info", jsonOutput: false, verbosity: VerbosityInfo, logInfo: true},
		{name: "json -vv shows info", jsonOutput: true, verbosity: VerbosityDebug, logInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, InitializeWithWriter(&buf, tt.jsonOutput, tt.verbosity))
			defer func() { Logger = zap.NewNop().Sugar() }()

			assert.Equal(t, tt.jsonOutput, JSONOutput)

			Logger.Infow("Diagram built", FieldNodes, 9)
			Cleanup()

			if tt.logInfo {
				assert.Contains(t, buf.String(), "Diagram built")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestJSONOutputIsStructured(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitializeWithWriter(&buf, true, VerbosityUser))
	defer func() { Logger = zap.NewNop().Sugar() }()

	Logger.Errorw("Render failed", FieldPath, "assets/x.png")
	Cleanup()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Render failed", entry["msg"])
	assert.Equal(t, "assets/x.png", entry[FieldPath])
	assert.Equal(t, "error", entry["level"])
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityAll + 3, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestShouldOutput(t *testing.T) {
	assert.False(t, ShouldOutput(VerbosityUser, OutputRendererInfo))
	assert.True(t, ShouldOutput(VerbosityInfo, OutputRendererInfo))
	assert.False(t, ShouldOutput(VerbosityInfo, OutputTiming))
	assert.True(t, ShouldOutput(VerbosityDebug, OutputTiming))
	assert.False(t, ShouldOutput(VerbosityDebug, OutputCommands))
	assert.True(t, ShouldOutput(VerbosityAll, OutputDataDump))
	assert.False(t, ShouldOutput(VerbosityTrace, OutputCategory(99)))
	assert.Equal(t, "data-dump", CategoryName(OutputDataDump))
	assert.Equal(t, "unknown", CategoryName(OutputCategory(99)))
}

func TestTimingFields(t *testing.T) {
	start := time.Now()

	assert.Empty(t, TimingFields(VerbosityUser, start))
	assert.Empty(t, TimingFields(VerbosityInfo, start))

	fields := TimingFields(VerbosityDebug, start)
	require.Len(t, fields, 2)
	assert.Equal(t, FieldDurationMS, fields[0])
	assert.IsType(t, int64(0), fields[1])
}
