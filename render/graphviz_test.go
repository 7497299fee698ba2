package render

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teranos/llmdiagram/diagram"
	"github.com/teranos/llmdiagram/errors"
	"github.com/teranos/llmdiagram/logger"
)

// fakeEngine copies the DOT source to the -o path and records its arguments.
const fakeEngine = `#!/bin/sh
if [ "$1" = "-V" ]; then
  echo "dot - graphviz version 9.0.0 (20230911.1827)" >&2
  exit 0
fi
echo "$@" > "$(dirname "$0")/args"
out=""
src=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift 2 ;;
    -*) shift ;;
    *) src="$1"; shift ;;
  esac
done
cp "$src" "$out"
`

func writeEngine(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	path := filepath.Join(t.TempDir(), "fake-dot")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))
	return path
}

func TestNewGraphvizDefaults(t *testing.T) {
	g, err := NewGraphviz(Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"dot"}, g.Command())
	assert.Equal(t, "out/x.png", g.OutputPath("out/x"))
}

func TestNewGraphvizSplitsEngine(t *testing.T) {
	g, err := NewGraphviz(Options{Engine: `dot -Gdpi=150 -Nfontname="Virgil GS"`, Format: "svg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dot", "-Gdpi=150", "-Nfontname=Virgil GS"}, g.Command())
	assert.Equal(t, "x.svg", g.OutputPath("x"))

	_, err = NewGraphviz(Options{Engine: `dot "unterminated`})
	assert.Error(t, err)
}

func TestRenderWritesImage(t *testing.T) {
	engine := writeEngine(t, fakeEngine)
	outDir := t.TempDir()
	base := filepath.Join(outDir, "llm-bottlenecks")

	g, err := NewGraphviz(Options{Engine: engine + " -Gdpi=150", Cleanup: true})
	require.NoError(t, err)

	path, err := g.Render(context.Background(), diagram.Bottlenecks("Virgil"), base)
	require.NoError(t, err)
	assert.Equal(t, base+".png", path)

	img, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(img), "digraph bottlenecks")

	_, err = os.Stat(base)
	assert.True(t, os.IsNotExist(err), "DOT source should be removed")

	args, err := os.ReadFile(filepath.Join(filepath.Dir(engine), "args"))
	require.NoError(t, err)
	assert.Equal(t, "-Gdpi=150 -Tpng -o "+base+".png "+base, strings.TrimSpace(string(args)))
}

func TestRenderKeepsSourceWithoutCleanup(t *testing.T) {
	engine := writeEngine(t, fakeEngine)
	base := filepath.Join(t.TempDir(), "diagram")

	g, err := NewGraphviz(Options{Engine: engine, Format: "svg"})
	require.NoError(t, err)

	path, err := g.Render(context.Background(), diagram.Bottlenecks("Virgil"), base)
	require.NoError(t, err)
	assert.Equal(t, base+".svg", path)
	assert.FileExists(t, base)
}

func TestRenderEngineUnavailable(t *testing.T) {
	base := filepath.Join(t.TempDir(), "diagram")
	g, err := NewGraphviz(Options{Engine: filepath.Join(t.TempDir(), "no-such-dot")})
	require.NoError(t, err)

	_, err = g.Render(context.Background(), diagram.Bottlenecks("Virgil"), base)
	require.Error(t, err)
	assert.True(t, errors.IsRendererUnavailable(err))
	assert.Contains(t, errors.Hint(err), "Graphviz")
}

func TestRenderMissingOutputDirectory(t *testing.T) {
	engine := writeEngine(t, fakeEngine)
	base := filepath.Join(t.TempDir(), "missing", "diagram")

	g, err := NewGraphviz(Options{Engine: engine})
	require.NoError(t, err)

	_, err = g.Render(context.Background(), diagram.Bottlenecks("Virgil"), base)
	require.Error(t, err)
	assert.False(t, errors.IsRendererUnavailable(err))
	assert.NoDirExists(t, filepath.Dir(base))
}

func TestRenderEngineFailure(t *testing.T) {
	engine := writeEngine(t, "#!/bin/sh\necho 'Error: syntax error in line 3' >&2\nexit 1\n")
	base := filepath.Join(t.TempDir(), "diagram")

	g, err := NewGraphviz(Options{Engine: engine, Cleanup: true})
	require.NoError(t, err)

	_, err = g.Render(context.Background(), diagram.Bottlenecks("Virgil"), base)
	require.Error(t, err)
	assert.Contains(t, errors.FlattenDetails(err), "syntax error in line 3")
	assert.FileExists(t, base, "source is kept when rendering fails")
}

func TestRenderInvalidDiagram(t *testing.T) {
	g, err := NewGraphviz(Options{})
	require.NoError(t, err)

	_, err = g.Render(context.Background(), diagram.Description{}, filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidDiagram(err))
}

// renderedEntry renders with a JSON logger at verbosity and returns the
// "diagram rendered" log entry.
func renderedEntry(t *testing.T, engine string, verbosity int) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, logger.InitializeWithWriter(&buf, true, verbosity))
	defer func() { logger.Logger = zap.NewNop().Sugar() }()

	g, err := NewGraphviz(Options{Engine: engine, Cleanup: true, Verbosity: verbosity})
	require.NoError(t, err)
	_, err = g.Render(context.Background(), diagram.Bottlenecks("Virgil"), filepath.Join(t.TempDir(), "d"))
	require.NoError(t, err)
	logger.Cleanup()

	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry), sc.Text())
		if entry["msg"] == "diagram rendered" {
			return entry
		}
	}
	t.Fatalf("no render log entry in %q", buf.String())
	return nil
}

func TestRenderLogsTimingOnlyWhenVerbose(t *testing.T) {
	engine := writeEngine(t, fakeEngine)

	entry := renderedEntry(t, engine, logger.VerbosityInfo)
	assert.EqualValues(t, 9, entry[logger.FieldNodes])
	assert.NotContains(t, entry, logger.FieldDurationMS)

	entry = renderedEntry(t, engine, logger.VerbosityDebug)
	assert.Contains(t, entry, logger.FieldDurationMS)
}
