package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tsel/internal/report"
)

// ReportViewer displays a selection report in an interactive TUI.
type ReportViewer struct{}

// NewReportViewer creates a new ReportViewer
func NewReportViewer() *ReportViewer {
	return &ReportViewer{}
}

// View shows the report: classes on the left, their selected tests on
// the right. Esc or q quits.
func (rv *ReportViewer) View(output *report.Output) error {
	if len(output.Selections) == 0 {
		color.Yellow("No tests were selected in the last run")
		return nil
	}

	byClass := make(map[string][]report.Entry)
	for _, entry := range output.Selections {
		byClass[entry.Class] = append(byClass[entry.Class], entry)
	}
	classes := make([]string, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)
	list.SetBorder(true).SetTitle(" Classes ")

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	details.SetBorder(true).SetTitle(" Selected tests ")

	renderClass := func(class string) {
		var b strings.Builder
		for i, entry := range byClass[class] {
			fmt.Fprintf(&b, "[yellow]%d.[white] %s\n", i+1, entry.DisplayName)
			if entry.Method != "" {
				fmt.Fprintf(&b, "   [gray]method:[white] %s\n", entry.Method)
			}
			if len(entry.Tags) > 0 {
				fmt.Fprintf(&b, "   [gray]tags:[white] %s\n", strings.Join(entry.Tags, ", "))
			}
			fmt.Fprintf(&b, "   [gray]%s[white]\n\n", entry.UniqueID)
		}
		details.SetText(b.String())
		details.ScrollToBeginning()
	}

	for _, class := range classes {
		list.AddItem(class, fmt.Sprintf("%d tests", len(byClass[class])), 0, nil)
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index >= 0 && index < len(classes) {
			renderClass(classes[index])
		}
	})
	renderClass(classes[0])

	header := tview.NewTextView().
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" [cyan]%d[white] tests selected across [cyan]%d[white] classes at %s  [gray](q to quit)",
			output.Meta.SelectedTests, output.Meta.TotalClasses, output.Meta.Timestamp))

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(tview.NewFlex().
			AddItem(list, 0, 1, true).
			AddItem(details, 0, 2, false), 0, 1, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(layout, true).Run()
}
