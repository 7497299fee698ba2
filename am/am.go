// Package am holds llmdiagram's configuration: defaults, config files,
// environment overrides and validation.
package am

import "fmt"

// Config represents the llmdiagram configuration
type Config struct {
	Font   FontConfig   `mapstructure:"font" toml:"font" json:"font" yaml:"font"`
	Render RenderConfig `mapstructure:"render" toml:"render" json:"render" yaml:"render"`
	Log    LogConfig    `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// FontConfig configures the font the diagram is labelled with and how the
// host font registry is queried
type FontConfig struct {
	// Font name or file (VIRGIL_FONT_PATH, default: Virgil)
	Path        string `mapstructure:"path" toml:"path" json:"path" yaml:"path"`
	// Font listing tool (default: fc-list)
	ListCommand string `mapstructure:"list_command" toml:"list_command" json:"list_command" yaml:"list_command"`
}

// RenderConfig configures the Graphviz invocation
type RenderConfig struct {
	// Layout command, may carry flags ("dot -Gdpi=150")
	Engine     string `mapstructure:"engine" toml:"engine" json:"engine" yaml:"engine"`
	// Output format and extension (default: png)
	Format     string `mapstructure:"format" toml:"format" json:"format" yaml:"format"`
	// Output path without extension
	Output     string `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	// Remove the DOT source after rendering
	Cleanup    bool   `mapstructure:"cleanup" toml:"cleanup" json:"cleanup" yaml:"cleanup"`
	// Semver constraint the installed Graphviz must satisfy (">= 2.40")
	MinVersion string `mapstructure:"min_version" toml:"min_version" json:"min_version" yaml:"min_version"`
}

// LogConfig configures console logging
type LogConfig struct {
	// Color theme: gruvbox, everforest
	Theme string `mapstructure:"theme" toml:"theme" json:"theme" yaml:"theme"`
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// OutputPath returns the image path a render will produce
func (c *Config) OutputPath() string {
	return c.Render.Output + "." + c.Render.Format
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Font: %s, Render: {Engine: %s, Format: %s, Output: %s}}",
		c.Font.Path, c.Render.Engine, c.Render.Format, c.Render.Output)
}
