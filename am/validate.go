package am

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/llmdiagram/errors"
)

var knownThemes = map[string]bool{"": true, "gruvbox": true, "everforest": true}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Font path may be empty: the diagram then falls back to Virgil

	if strings.TrimSpace(c.Render.Engine) == "" {
		return errors.NewInvalidConfigError("render.engine cannot be empty")
	}
	if c.Render.Format == "" {
		return errors.NewInvalidConfigError("render.format cannot be empty")
	}
	if strings.ContainsAny(c.Render.Format, `/\. `) {
		return errors.NewInvalidConfigError("render.format must be a bare Graphviz format like png or svg, got %q", c.Render.Format)
	}
	if c.Render.Output == "" {
		return errors.NewInvalidConfigError("render.output cannot be empty")
	}
	if strings.HasSuffix(c.Render.Output, "/") {
		return errors.NewInvalidConfigError("render.output must name a file, got directory %q", c.Render.Output)
	}

	if c.Render.MinVersion != "" {
		if _, err := semver.NewConstraint(c.Render.MinVersion); err != nil {
			return errors.Mark(
				errors.Wrapf(err, "render.min_version %q is not a version constraint", c.Render.MinVersion),
				errors.ErrInvalidConfig)
		}
	}

	if !knownThemes[c.Log.Theme] {
		return errors.NewInvalidConfigError("log.theme must be gruvbox or everforest, got %q", c.Log.Theme)
	}

	return nil
}
