package fonts

import (
	"context"
	"time"

	"github.com/teranos/llmdiagram/console"
	"github.com/teranos/llmdiagram/logger"
)

const closingHint = "If the font is not found, make sure fg-virgil is installed and font cache is updated."

// Option customises Diagnose
type Option func(*options)

type options struct {
	host      func(ctx context.Context) (HostInfo, error)
	verbosity int
}

// WithHostDetector replaces the gopsutil host lookup used for the install hint
func WithHostDetector(detect func(ctx context.Context) (HostInfo, error)) Option {
	return func(o *options) { o.host = detect }
}

// WithVerbosity sets the -v count that gates timing fields in the log
func WithVerbosity(verbosity int) Option {
	return func(o *options) { o.verbosity = verbosity }
}

// Diagnose checks the catalog for target and prints the result through
// emitter. It never fails: a broken listing becomes an [ERROR] line and the
// returned report carries the cause. An empty target means Virgil.
func Diagnose(ctx context.Context, catalog Catalog, target string, emitter console.Emitter, opts ...Option) Report {
	if target == "" {
		target = DefaultFont
	}
	o := options{host: DetectHost}
	for _, opt := range opts {
		opt(&o)
	}
	log := logger.LoggerFromContext(ctx, logger.ComponentLogger("fonts"))

	emitter.EmitInfo("Setting fontname to: " + target)
	emitter.EmitInfo("Checking for Virgil font in system fonts...")

	start := time.Now()
	r := Check(ctx, catalog, target)
	switch {
	case r.Err != nil:
		emitter.EmitError("Could not check system fonts", r.Err)
		log.Debugw("font listing failed", logger.FieldError, r.Err)
	case r.Found():
		for _, m := range r.Matches {
			emitter.EmitFound(m.Line)
		}
		emitter.EmitInfo("Virgil font is available to the system.")
	default:
		emitter.EmitWarning("Virgil font not found in system font list or at " + target + "!")
	}
	fields := []interface{}{logger.FieldFont, r.Target, logger.FieldMatches, len(r.Matches)}
	log.Infow("font check finished", append(fields, logger.TimingFields(o.verbosity, start)...)...)

	emitter.EmitInfo(closingHint)
	if o.host != nil {
		info, err := o.host(ctx)
		if err != nil {
			log.Debugw("host lookup failed", logger.FieldError, err)
		}
		if hint := InstallHint(info); hint != "" {
			emitter.EmitInfo(hint)
		}
	}
	return r
}
