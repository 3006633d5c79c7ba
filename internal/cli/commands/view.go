package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tsel/internal/config"
	"tsel/internal/report"
	"tsel/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config *config.Config
	store  report.Store
	viewer *ui.ReportViewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, store report.Store, viewer *ui.ReportViewer) *ViewCommand {
	return &ViewCommand{
		config: cfg,
		store:  store,
		viewer: viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := vc.store.Load()
	if err != nil {
		return fmt.Errorf("no selection report to view (run select first): %w", err)
	}

	return vc.viewer.View(output)
}
