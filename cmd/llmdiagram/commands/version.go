package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/llmdiagram/display"
	"github.com/teranos/llmdiagram/render"
	"github.com/teranos/llmdiagram/version"
)

// versionReport is the JSON form of the version command
type versionReport struct {
	version.Info
	Engine      *render.EngineInfo `json:"engine,omitempty"`
	EngineError string             `json:"engine_error,omitempty"`
}

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show llmdiagram and Graphviz version information",
	Long: `Display version, build time, commit hash and platform information for the
llmdiagram binary, and the version of the configured Graphviz engine.
Fails when render.min_version is set and the engine does not satisfy it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		report := versionReport{Info: version.Get()}

		gv, err := newGraphviz(cfg, 0)
		if err != nil {
			return err
		}
		var versionErr error
		if info, err := gv.Probe(cmd.Context()); err != nil {
			report.EngineError = err.Error()
		} else {
			report.Engine = &info
			versionErr = render.CheckVersion(info.Version, cfg.Render.MinVersion)
		}

		out := cmd.OutOrStdout()
		if display.ShouldOutputJSON(cmd) {
			if err := display.OutputJSON(out, report); err != nil {
				return err
			}
			return versionErr
		}

		fmt.Fprintln(out, report.Info.String())
		fmt.Fprintf(out, "Platform: %s\n", report.Platform)
		fmt.Fprintf(out, "Go: %s\n", report.GoVersion)
		if report.Engine != nil {
			fmt.Fprintf(out, "Graphviz: %s (%s)\n", report.Engine.Version, report.Engine.Binary)
		} else {
			fmt.Fprintf(out, "Graphviz: not available (%s)\n", report.EngineError)
		}
		return versionErr
	},
}
