package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/llmdiagram/am"
	"github.com/teranos/llmdiagram/display"
	"github.com/teranos/llmdiagram/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage llmdiagram configuration",
	Long: `Display and manage llmdiagram configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (VIRGIL_FONT_PATH, LLMDIAGRAM_* prefix)
3. Project config (./llmdiagram.toml, searched up the directory tree)
4. User config (~/.llmdiagram/config.toml)
5. System config (/etc/llmdiagram/config.toml)
6. Default values

Examples:
  llmdiagram config show                # Show current configuration
  llmdiagram config show --format json  # Show configuration in JSON format
  llmdiagram config get render.engine   # Get specific config value
  llmdiagram config init                # Write ./llmdiagram.toml with defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., font.path, render.format)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show which configuration files are read",
	Args:  cobra.NoArgs,
	RunE:  runConfigWhere,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configShowCmd.Flags().String("format", "toml", "Output format: toml, json, yaml")
	configInitCmd.Flags().Bool("user", false, "Write ~/.llmdiagram/config.toml instead of ./"+am.ProjectConfigName)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file (the old one is kept as .back1)")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configWhereCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()
	if format != "toml" {
		return display.Output(out, format, cfg)
	}

	data, err := am.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# llmdiagram configuration\n%s", data)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := am.GetViper()
	if !v.IsSet(key) {
		return errors.Newf("configuration key %q not found", key)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	for i, path := range am.ConfigPaths() {
		state := "missing"
		if _, err := os.Stat(path); err == nil {
			state = "loaded"
		}
		fmt.Fprintf(out, "  %d. [FILE]     %s (%s)\n", i+2, path, state)
	}
	fmt.Fprintf(out, "  -  [ENV]      %s, LLMDIAGRAM_* environment variables\n", am.FontPathEnv)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	user, _ := cmd.Flags().GetBool("user")
	force, _ := cmd.Flags().GetBool("force")

	path := am.ProjectConfigName
	if user {
		path = am.UserConfigPath()
		if path == "" {
			return errors.New("could not determine home directory")
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if err := am.WriteConfig(path, am.Defaults(), force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
