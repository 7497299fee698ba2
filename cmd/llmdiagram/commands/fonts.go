package commands

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/teranos/llmdiagram/fonts"
	"github.com/teranos/llmdiagram/logger"
)

// FontsCmd runs only the font diagnostics
var FontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "Check whether the diagram font is installed",
	Long: `Query the host font registry (fc-list : family,file) for the diagram font
and print every matching line. Always exits 0: a missing font or a missing
fc-list is reported, not fatal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		verbosity, _ := cmd.Flags().GetCount("verbose")
		ctx := logger.WithRunID(cmd.Context(), uuid.NewString())
		fonts.Diagnose(ctx, fonts.NewFCList(cfg.Font.ListCommand), cfg.Font.Path, newEmitter(cmd),
			fonts.WithHostDetector(hostDetector), fonts.WithVerbosity(verbosity))
		return nil
	},
}
