package commands

import (
	"fmt"

	"tsel/internal/config"
	"tsel/internal/engine"
	"tsel/internal/execution"
	"tsel/internal/manifest"
	"tsel/internal/platform"
	"tsel/internal/report"
	"tsel/internal/selection"
	"tsel/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// SelectCommand handles the select command
type SelectCommand struct {
	config    *config.Config
	formatter *ui.Formatter
	store     report.Store
}

// NewSelectCommand creates a new SelectCommand
func NewSelectCommand(cfg *config.Config, formatter *ui.Formatter, store report.Store) *SelectCommand {
	return &SelectCommand{
		config:    cfg,
		formatter: formatter,
		store:     store,
	}
}

// Execute runs the command
func (sc *SelectCommand) Execute(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(sc.config.GetManifestPath())
	if err != nil {
		return err
	}

	eng := engine.New(selection.Skipper{})
	suites := manifest.Build(m)
	for _, s := range suites {
		if err := eng.Register(s); err != nil {
			return err
		}
	}

	finder, err := selection.NewFinder(eng, selection.GroupConfig{
		ExcludedGroups: sc.config.Flags.ExcludedGroups,
		IncludedGroups: sc.config.Flags.IncludedGroups,
	}, sc.config.Flags.Methods)
	if err != nil {
		return err
	}

	classes := sc.classesToSelect(suites)
	if len(classes) == 0 {
		color.Yellow("No classes to select from")
		return nil
	}

	pool := execution.NewPool(sc.config, finder)
	pool.SetProgress(ui.NewProgressBar(len(classes)))

	results, duration, err := pool.Select(classes)
	if err != nil {
		return err
	}

	var selected []selection.SelectedTest
	var display []ui.ClassResult
	var failed int
	for _, res := range results {
		selected = append(selected, res.Tests...)
		display = append(display, ui.ClassResult{Class: res.Class.Name, Tests: res.Tests, Err: res.Err})
		if res.Err != nil {
			failed++
		}
	}

	sc.formatter.PrintSelections(display)

	if err := sc.store.Save(selected, len(classes), duration, sc.config.Processors); err != nil {
		return fmt.Errorf("failed to save selection report: %w", err)
	}

	sc.formatter.PrintSummary(report.Meta{
		TotalClasses:    len(classes),
		SelectedTests:   len(selected),
		DurationSeconds: duration.Seconds(),
		Workers:         sc.config.Processors,
	})

	if failed > 0 {
		return fmt.Errorf("selection failed for %d of %d classes", failed, len(classes))
	}
	return nil
}

// classesToSelect returns the classes the run covers: the one named by
// --class, or every class the manifest declares. Nested classes are
// still handed to the finder, which yields an empty result for them;
// their tests surface through the enclosing class only.
func (sc *SelectCommand) classesToSelect(suites []*engine.Suite) []platform.Class {
	var classes []platform.Class
	for _, s := range suites {
		if sc.config.Flags.Class != "" && s.Class.Name != sc.config.Flags.Class {
			continue
		}
		classes = append(classes, s.Class)
	}
	return classes
}
