package am

import (
	"github.com/spf13/viper"
)

// Default values
const (
	DefaultFontPath    = "Virgil"
	DefaultListCommand = "fc-list"
	DefaultEngine      = "dot"
	DefaultFormat      = "png"
	DefaultOutput      = "assets/llm-bottlenecks"
	DefaultLogTheme    = "everforest"
)

// FontPathEnv is the environment variable naming the diagram font
const FontPathEnv = "VIRGIL_FONT_PATH"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("font.path", DefaultFontPath)
	v.SetDefault("font.list_command", DefaultListCommand)

	v.SetDefault("render.engine", DefaultEngine)
	v.SetDefault("render.format", DefaultFormat)
	v.SetDefault("render.output", DefaultOutput)
	v.SetDefault("render.cleanup", true) // Only the image is kept
	v.SetDefault("render.min_version", "")

	v.SetDefault("log.theme", DefaultLogTheme)
}

// BindEnvVars binds configuration keys whose environment names don't
// follow the LLMDIAGRAM_ prefix
func BindEnvVars(v *viper.Viper) {
	// First name found wins
	v.BindEnv("font.path", FontPathEnv, envPrefix+"_FONT_PATH")
}

// Defaults returns the configuration with nothing but defaults applied
func Defaults() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always decode
		panic(err)
	}
	return cfg
}
