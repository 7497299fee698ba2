package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/teranos/llmdiagram/am"
	"github.com/teranos/llmdiagram/console"
	"github.com/teranos/llmdiagram/diagram"
	"github.com/teranos/llmdiagram/fonts"
	"github.com/teranos/llmdiagram/logger"
	"github.com/teranos/llmdiagram/render"
)

// pipeline is one full run: font diagnostics, then build and render
type pipeline struct {
	catalog     fonts.Catalog
	renderer    render.Renderer
	emitter     console.Emitter
	fontPath    string
	outputBase  string
	fontOptions []fonts.Option
	// checkEngine gates rendering once diagnostics are printed; may be nil
	checkEngine func(ctx context.Context) error
}

// run never lets a font problem stop the render; an engine or render
// failure is returned after the diagnostics have been printed
func (p *pipeline) run(ctx context.Context) (string, error) {
	fonts.Diagnose(ctx, p.catalog, p.fontPath, p.emitter, p.fontOptions...)

	if p.checkEngine != nil {
		if err := p.checkEngine(ctx); err != nil {
			return "", err
		}
	}

	desc := diagram.Bottlenecks(p.fontPath)
	path, err := p.renderer.Render(ctx, desc, p.outputBase)
	if err != nil {
		return "", err
	}

	p.emitter.EmitInfo(fmt.Sprintf("Diagram saved as '%s'", path))
	return path, nil
}

// hostDetector lets tests replace the gopsutil lookup
var hostDetector = fonts.DetectHost

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	verbosity, _ := cmd.Flags().GetCount("verbose")

	runID := uuid.NewString()
	ctx := logger.WithRunID(cmd.Context(), runID)
	log := logger.LoggerFromContext(ctx, logger.ComponentLogger("generate"))
	if logger.ShouldOutput(verbosity, logger.OutputConfig) {
		log.Debugw("configuration", "config", cfg.String(), "files", am.LoadedFiles())
	}

	gv, err := newGraphviz(cfg, verbosity)
	if err != nil {
		return err
	}

	p := &pipeline{
		catalog:    fonts.NewFCList(cfg.Font.ListCommand),
		renderer:   gv,
		emitter:    newEmitter(cmd),
		fontPath:   cfg.Font.Path,
		outputBase: cfg.Render.Output,
		fontOptions: []fonts.Option{
			fonts.WithHostDetector(hostDetector),
			fonts.WithVerbosity(verbosity),
		},
		checkEngine: func(ctx context.Context) error {
			return checkEngineVersion(ctx, gv, cfg.Render.MinVersion)
		},
	}
	path, err := p.run(ctx)
	if err != nil {
		log.Errorw("render failed", logger.FieldError, err)
		return err
	}
	log.Infow("run complete", logger.FieldPath, path)
	return nil
}
