package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/llmdiagram/am"
	"github.com/teranos/llmdiagram/console"
	"github.com/teranos/llmdiagram/display"
	"github.com/teranos/llmdiagram/errors"
	"github.com/teranos/llmdiagram/logger"
)

// RootCmd renders the diagram; subcommands expose the individual steps
var RootCmd = &cobra.Command{
	Use:   "llmdiagram",
	Short: "Render the LLM inference vs training bottlenecks diagram",
	Long: `llmdiagram - LLM inference vs training bottlenecks diagram.

Checks the host font registry for the Virgil font (VIRGIL_FONT_PATH),
builds the diagram and renders it with Graphviz to assets/llm-bottlenecks.png.

Examples:
  llmdiagram                          # Check fonts and render the PNG
  llmdiagram --format svg -o out/llm  # Render out/llm.svg
  llmdiagram fonts                    # Only run the font diagnostics
  llmdiagram dot | dot -Tpdf > d.pdf  # Print the DOT source
  llmdiagram describe --format yaml   # Print the diagram description`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runGenerate,
}

// flagKeys maps the root command's flags onto configuration keys; flags win
// over environment and config files when set. Subcommands may reuse a name
// (config show --format) without touching these keys.
var flagKeys = map[string]string{
	"font":   "font.path",
	"output": "render.output",
	"format": "render.format",
	"engine": "render.engine",
}

func bindFlags() error {
	v := am.GetViper()
	for name, key := range flagKeys {
		f := RootCmd.PersistentFlags().Lookup(name)
		if f == nil {
			f = RootCmd.Flags().Lookup(name)
		}
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "failed to bind --%s to %s", name, key)
		}
	}
	if keep := RootCmd.Flags().Lookup("keep-source"); keep != nil && keep.Changed {
		v.Set("render.cleanup", keep.Value.String() != "true")
	}
	return nil
}

// loadConfig loads, validates and applies the configuration
func loadConfig() (*am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.SetTheme(cfg.Log.Theme)
	return cfg, nil
}

// newEmitter picks the status line format for cmd's stdout
func newEmitter(cmd *cobra.Command) console.Emitter {
	out := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd) {
		return console.NewJSONEmitter(out)
	}
	color := out == os.Stdout && pterm.PrintColor && os.Getenv("NO_COLOR") == ""
	return console.NewCLIEmitter(out, color)
}

func init() {
	// Assigned here rather than in the literal: bindFlags refers to RootCmd
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(display.ShouldOutputJSON(cmd), verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return bindFlags()
	}

	// Add global flags
	RootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv, -vvvv)")
	RootCmd.PersistentFlags().Bool("json", false, "Emit status lines and logs as JSON")
	RootCmd.PersistentFlags().String("font", "", "Font name or path (overrides "+am.FontPathEnv+")")

	RootCmd.Flags().StringP("output", "o", "", "Output path without extension (default "+am.DefaultOutput+")")
	RootCmd.Flags().String("format", "", "Graphviz output format (default "+am.DefaultFormat+")")
	RootCmd.Flags().String("engine", "", "Layout command, e.g. \"dot -Gdpi=150\" (default "+am.DefaultEngine+")")
	RootCmd.Flags().Bool("keep-source", false, "Keep the intermediate DOT file next to the image")

	RootCmd.AddCommand(FontsCmd)
	RootCmd.AddCommand(DotCmd)
	RootCmd.AddCommand(DescribeCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(VersionCmd)
}
