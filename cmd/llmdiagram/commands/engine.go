package commands

import (
	"context"

	"github.com/teranos/llmdiagram/am"
	"github.com/teranos/llmdiagram/logger"
	"github.com/teranos/llmdiagram/render"
)

func newGraphviz(cfg *am.Config, verbosity int) (*render.Graphviz, error) {
	return render.NewGraphviz(render.Options{
		Engine:    cfg.Render.Engine,
		Format:    cfg.Render.Format,
		Cleanup:   cfg.Render.Cleanup,
		Verbosity: verbosity,
	})
}

// checkEngineVersion enforces render.min_version when the engine can be
// probed. An engine that cannot be run is left for Render to report.
func checkEngineVersion(ctx context.Context, gv *render.Graphviz, constraint string) error {
	if constraint == "" {
		return nil
	}
	log := logger.LoggerFromContext(ctx, logger.ComponentLogger("render"))

	info, err := gv.Probe(ctx)
	if err != nil {
		log.Debugw("engine probe failed", logger.FieldError, err)
		return nil
	}
	return render.CheckVersion(info.Version, constraint)
}
