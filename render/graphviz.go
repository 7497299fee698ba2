package render

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/teranos/llmdiagram/diagram"
	"github.com/teranos/llmdiagram/errors"
	"github.com/teranos/llmdiagram/logger"
)

const installHint = "install Graphviz (https://graphviz.org/download/) and make sure 'dot' is on PATH, or set render.engine"

// Options configure a Graphviz renderer
type Options struct {
	// Engine is the layout command, split like a shell would ("dot -Gdpi=150")
	Engine string
	// Format is the Graphviz output format and file extension
	Format string
	// Cleanup removes the DOT source once the image is written
	Cleanup bool
	// Verbosity gates timing, engine details, the command line and DOT source dumps
	Verbosity int
}

// Graphviz renders by writing DOT source to disk and running a layout engine on it
type Graphviz struct {
	argv      []string
	format    string
	cleanup   bool
	verbosity int
	logger    *zap.SugaredLogger
}

// NewGraphviz creates a renderer. An empty engine means dot, an empty format png.
func NewGraphviz(opts Options) (*Graphviz, error) {
	engine := strings.TrimSpace(opts.Engine)
	if engine == "" {
		engine = DefaultEngine
	}
	argv, err := shellquote.Split(engine)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "invalid render engine %q", opts.Engine),
			"quote engine arguments the way a shell would")
	}
	if len(argv) == 0 {
		return nil, errors.Newf("render engine %q has no command", opts.Engine)
	}
	format := opts.Format
	if format == "" {
		format = DefaultFormat
	}
	return &Graphviz{
		argv:      argv,
		format:    format,
		cleanup:   opts.Cleanup,
		verbosity: opts.Verbosity,
		logger:    logger.ComponentLogger("render"),
	}, nil
}

// Command returns the engine argv without the per-render arguments
func (g *Graphviz) Command() []string { return append([]string(nil), g.argv...) }

// OutputPath is where Render leaves the image for outputBase
func (g *Graphviz) OutputPath(outputBase string) string { return outputBase + "." + g.format }

// Render writes the DOT source to outputBase, runs the engine to produce
// outputBase.<format> and, with Cleanup, removes the source. Directories
// are never created: a missing parent directory is an error.
func (g *Graphviz) Render(ctx context.Context, desc diagram.Description, outputBase string) (string, error) {
	log := logger.LoggerFromContext(ctx, g.logger)
	start := time.Now()

	src, err := diagram.MarshalDOT(desc)
	if err != nil {
		return "", errors.Wrap(err, "failed to build DOT source")
	}
	if logger.ShouldOutput(g.verbosity, logger.OutputDataDump) {
		log.Debugw("DOT source", logger.FieldPath, outputBase, "source", string(src))
	}

	if err := os.WriteFile(outputBase, src, 0o644); err != nil {
		return "", errors.WithHint(
			errors.Wrapf(err, "failed to write DOT source %s", outputBase),
			"the output directory must already exist")
	}

	bin, err := exec.LookPath(g.argv[0])
	if err != nil {
		return "", errors.WithHint(
			errors.Mark(errors.Wrapf(err, "failed to execute %s", g.argv[0]), errors.ErrRendererUnavailable),
			installHint)
	}

	output := g.OutputPath(outputBase)
	args := append(append([]string(nil), g.argv[1:]...), "-T"+g.format, "-o", output, outputBase)
	if logger.ShouldOutput(g.verbosity, logger.OutputCommands) {
		log.Debugw("running layout engine", logger.FieldBinary, bin, logger.FieldArgs, args)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		err = errors.Wrapf(err, "%s failed to render %s", g.argv[0], output)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = errors.WithDetail(err, msg)
		}
		return "", err
	}

	if g.cleanup {
		if err := os.Remove(outputBase); err != nil && !os.IsNotExist(err) {
			log.Warnw("failed to remove DOT source", logger.FieldPath, outputBase, logger.FieldError, err)
		}
	}

	stats := desc.Stats()
	fields := []interface{}{
		logger.FieldPath, output,
		logger.FieldFormat, g.format,
		logger.FieldClusters, stats.Clusters,
		logger.FieldNodes, stats.Nodes,
		logger.FieldEdges, stats.Edges,
	}
	log.Infow("diagram rendered", append(fields, logger.TimingFields(g.verbosity, start)...)...)
	return output, nil
}
