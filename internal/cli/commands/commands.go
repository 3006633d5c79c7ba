package commands

import (
	"tsel/internal/cli"
	"tsel/internal/config"
	"tsel/internal/report"
	"tsel/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Select *SelectCommand
	List   *ListCommand
	View   *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	formatter := ui.NewFormatter()
	store := report.NewJSONStore(cfg)
	viewer := ui.NewReportViewer()

	return &Commands{
		Select: NewSelectCommand(cfg, formatter, store),
		List:   NewListCommand(cfg, formatter),
		View:   NewViewCommand(cfg, store, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Select command
	selectCmd := &cobra.Command{
		Use:   "select",
		Short: "Select executable tests for the manifest's classes",
		Long:  "Run one discovery-and-execute cycle per class and report the exact set of tests a downstream engine should run, including dynamically registered ones",
		RunE:  c.Select.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	selectCmd.Flags().StringVarP(&flags.Manifest, "manifest", "m", "", "Path to the suite manifest (default tsel.yaml, or TSEL_MANIFEST)")
	selectCmd.Flags().StringVarP(&flags.Class, "class", "c", "", "Restrict selection to a single class")
	selectCmd.Flags().StringSliceVarP(&flags.ExcludedGroups, "excluded-groups", "x", nil, "Tag groups to exclude (nodes tagged with any of these are dropped)")
	selectCmd.Flags().StringSliceVarP(&flags.IncludedGroups, "included-groups", "g", nil, "Tag groups to include (only nodes tagged with at least one are kept)")
	selectCmd.Flags().StringSliceVar(&flags.Methods, "methods", nil, "Restrict selection to these test method names")
	selectCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Path of the JSON selection report")
	selectCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 4, "Number of parallel selection workers")
	rootCmd.AddCommand(selectCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the manifest's declared suites",
		Long:  "Print the statically declared classes, containers and tests without running selection",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.Manifest, "manifest", "m", "", "Path to the suite manifest (default tsel.yaml, or TSEL_MANIFEST)")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "t", false, "Show declared leaf tests, not just classes and containers")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the last selection report interactively",
		Long:  "Open the JSON selection report from the last select run in an interactive viewer",
		RunE:  c.View.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			*cfg = *config.Load(flags.ToConfigFlags())
			return nil
		},
	}
	viewCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Path of the JSON selection report to open")
	rootCmd.AddCommand(viewCmd)
}
