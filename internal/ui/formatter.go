package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tsel/internal/manifest"
	"tsel/internal/report"
	"tsel/internal/selection"
)

// ClassResult is the displayable outcome of selecting one class.
type ClassResult struct {
	Class string
	Tests []selection.SelectedTest
	Err   error
}

// Formatter formats and displays output
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintSelections prints the selected tests grouped by class.
func (f *Formatter) PrintSelections(results []ClassResult) {
	for _, res := range results {
		fmt.Println()
		if res.Err != nil {
			color.Red("✗ %s: %v", res.Class, res.Err)
			continue
		}
		if len(res.Tests) == 0 {
			color.Yellow("○ %s: no tests selected", res.Class)
			continue
		}
		color.Cyan("● %s (%d selected)", res.Class, len(res.Tests))
		for _, st := range res.Tests {
			line := "  " + st.ID.DisplayName
			if method, ok := st.ID.MethodName(); ok && method != st.ID.DisplayName {
				line += color.HiBlackString(" (%s)", method)
			}
			if len(st.ID.Tags) > 0 {
				line += color.MagentaString(" [%s]", strings.Join(st.ID.Tags, ", "))
			}
			fmt.Println(line)
		}
	}
}

// PrintSummary displays the selection run statistics.
func (f *Formatter) PrintSummary(meta report.Meta) {
	fmt.Println()
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Test Selection Summary                    ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝")
	fmt.Println()

	fmt.Printf("  %-20s ", "Classes")
	color.White("%d", meta.TotalClasses)
	fmt.Printf("  %-20s ", "Selected tests")
	color.Green("%d", meta.SelectedTests)
	fmt.Printf("  %-20s ", "Duration")
	color.White("%.2fs", meta.DurationSeconds)
	fmt.Printf("  %-20s ", "Workers")
	color.White("%d", meta.Workers)
	fmt.Println()
}

// PrintTree prints the statically declared suites of a manifest without
// executing anything. With showTests, leaf tests are printed under their
// class; otherwise only classes and containers appear.
func (f *Formatter) PrintTree(m *manifest.Manifest, showTests bool) {
	for i := range m.Suites {
		f.printSuite(&m.Suites[i], "", showTests)
	}
}

func (f *Formatter) printSuite(s *manifest.SuiteSpec, indent string, showTests bool) {
	color.Cyan("%s%s%s", indent, s.Class, tagSuffix(s.Tags))
	if showTests {
		for _, t := range s.Tests {
			f.printTest(&t, indent+"  ")
		}
	}
	for i := range s.Containers {
		f.printContainer(&s.Containers[i], indent+"  ", showTests)
	}
	for i := range s.Nested {
		f.printSuite(&s.Nested[i], indent+"  ", showTests)
	}
}

func (f *Formatter) printContainer(c *manifest.ContainerSpec, indent string, showTests bool) {
	suffix := tagSuffix(c.Tags)
	if c.Dynamic > 0 {
		suffix += color.HiBlackString(" (dynamic: %d)", c.Dynamic)
	}
	fmt.Printf("%s%s%s\n", indent, c.Name, suffix)
	if showTests {
		for _, t := range c.Tests {
			f.printTest(&t, indent+"  ")
		}
	}
	for i := range c.Containers {
		f.printContainer(&c.Containers[i], indent+"  ", showTests)
	}
}

func (f *Formatter) printTest(t *manifest.TestSpec, indent string) {
	line := indent + t.Name + tagSuffix(t.Tags)
	if t.Disabled {
		line += color.HiBlackString(" (disabled)")
	}
	fmt.Println(line)
}

func tagSuffix(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return color.MagentaString(" [%s]", strings.Join(tags, ", "))
}
