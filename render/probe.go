package render

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/llmdiagram/errors"
	"github.com/teranos/llmdiagram/logger"
)

var versionPattern = regexp.MustCompile(`version\s+(\d+(?:\.\d+){0,2})`)

// EngineInfo describes the installed layout engine
type EngineInfo struct {
	Binary  string          `json:"binary"`
	Banner  string          `json:"banner"`
	Version *semver.Version `json:"version,omitempty"`
}

// ParseVersion extracts the version from a "dot -V" banner such as
// "dot - graphviz version 2.43.0 (0)".
func ParseVersion(banner string) (*semver.Version, error) {
	m := versionPattern.FindStringSubmatch(banner)
	if m == nil {
		return nil, errors.Newf("no version in %q", banner)
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, errors.Wrapf(err, "invalid engine version %s", m[1])
	}
	return v, nil
}

// Probe runs "<engine> -V" and reports what it printed. Graphviz writes the
// banner to stderr, so both streams are read.
func (g *Graphviz) Probe(ctx context.Context) (EngineInfo, error) {
	bin, err := exec.LookPath(g.argv[0])
	if err != nil {
		return EngineInfo{}, errors.WithHint(
			errors.Mark(errors.Wrapf(err, "failed to execute %s", g.argv[0]), errors.ErrRendererUnavailable),
			installHint)
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-V")
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return EngineInfo{Binary: bin}, errors.Wrapf(err, "%s -V failed", g.argv[0])
	}

	info := EngineInfo{Binary: bin, Banner: string(bytes.TrimSpace(out.Bytes()))}
	info.Version, err = ParseVersion(info.Banner)
	if err != nil {
		return info, err
	}
	if logger.ShouldOutput(g.verbosity, logger.OutputRendererInfo) {
		logger.LoggerFromContext(ctx, g.logger).Infow("layout engine",
			logger.FieldBinary, bin, logger.FieldVersion, info.Version.String())
	}
	return info, nil
}

// CheckVersion reports an error when v does not satisfy constraint
// (for example ">= 2.30"). An empty constraint accepts anything.
func CheckVersion(v *semver.Version, constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %s", constraint)
	}
	if !c.Check(v) {
		return errors.WithHint(
			errors.Newf("graphviz %s does not satisfy %s", v, constraint),
			"upgrade Graphviz")
	}
	return nil
}
