package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/llmdiagram/diagram"
)

// DotCmd prints the DOT source without rendering it
var DotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Print the diagram as Graphviz DOT source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, err := diagram.MarshalDOT(diagram.Bottlenecks(cfg.Font.Path))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(src)
		return err
	},
}
