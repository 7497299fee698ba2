package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/llmdiagram/errors"
)

const envPrefix = "LLMDIAGRAM"

// ProjectConfigName is the per-project config file, found by walking up
// from the working directory
const ProjectConfigName = "llmdiagram.toml"

// SystemConfigPath is the lowest-precedence config file
const SystemConfigPath = "/etc/llmdiagram/config.toml"

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load returns the configuration merged from defaults, config files and
// the environment. The result is cached until Reset.
func Load() (*Config, error) {
	if globalConfig == nil {
		cfg, err := LoadWithViper(GetViper())
		if err != nil {
			return nil, err
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// GetViper returns the shared Viper instance, creating it on first use
func GetViper() *viper.Viper {
	if viperInstance == nil {
		viperInstance = newViper(ConfigPaths())
	}
	return viperInstance
}

// LoadWithViper decodes the configuration held by v
func LoadWithViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return cfg, nil
}

// LoadFromFile reads one TOML file over the defaults, ignoring the environment
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	return LoadWithViper(v)
}

// Reset drops the cached configuration and Viper instance
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// newViper layers defaults < files (in order) < environment
func newViper(files []string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)
	SetDefaults(v)

	v.SetConfigType("toml")
	for _, f := range existing(files) {
		v.SetConfigFile(f)
		// An unreadable file is skipped rather than failing the run
		_ = v.MergeInConfig()
	}
	return v
}

// UserConfigPath returns ~/.llmdiagram/config.toml, or "" without a home directory
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".llmdiagram", "config.toml")
}

// ConfigPaths lists candidate config files, lowest precedence first
func ConfigPaths() []string {
	paths := []string{SystemConfigPath}
	if user := UserConfigPath(); user != "" {
		paths = append(paths, user)
	}
	if wd, err := os.Getwd(); err == nil {
		if project := findProjectConfig(wd); project != "" {
			paths = append(paths, project)
		}
	}
	return paths
}

// LoadedFiles returns the config files that exist among ConfigPaths
func LoadedFiles() []string {
	return existing(ConfigPaths())
}

func existing(paths []string) []string {
	var out []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// findProjectConfig walks up from dir to the filesystem root looking for
// ProjectConfigName
func findProjectConfig(dir string) string {
	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
