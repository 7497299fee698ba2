package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/llmdiagram/diagram"
	"github.com/teranos/llmdiagram/display"
)

// description is the describe command's document
type description struct {
	diagram.Description `yaml:",inline"`
	Stats               diagram.Stats `json:"stats" yaml:"stats"`
}

// DescribeCmd prints the diagram description as data
var DescribeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the diagram description as JSON or YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		desc := diagram.Bottlenecks(cfg.Font.Path)
		return display.Output(cmd.OutOrStdout(), format, description{Description: desc, Stats: desc.Stats()})
	},
}

func init() {
	DescribeCmd.Flags().String("format", display.FormatJSON, "Output format: json, yaml")
}
