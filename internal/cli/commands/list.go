package commands

import (
	"github.com/spf13/cobra"

	"tsel/internal/config"
	"tsel/internal/manifest"
	"tsel/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(lc.config.GetManifestPath())
	if err != nil {
		return err
	}

	lc.formatter.PrintTree(m, lc.config.Flags.TestCases)
	return nil
}
