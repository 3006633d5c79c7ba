package report

import (
	"time"

	"tsel/internal/selection"
)

// Meta contains metadata about one selection run.
type Meta struct {
	TotalClasses    int     `json:"total_classes"`
	SelectedTests   int     `json:"selected_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// Entry is one selected test in the report.
type Entry struct {
	Class       string   `json:"class"`
	UniqueID    string   `json:"unique_id"`
	DisplayName string   `json:"display_name"`
	Method      string   `json:"method,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Output is the complete selection report structure.
type Output struct {
	Meta       Meta    `json:"meta"`
	Selections []Entry `json:"selections"`
}

// Store persists and loads selection reports (e.g. for the view command).
type Store interface {
	Save(selected []selection.SelectedTest, classes int, duration time.Duration, workers int) error
	Load() (*Output, error)
}

// NewEntry maps a selected test to its report entry.
func NewEntry(st selection.SelectedTest) Entry {
	entry := Entry{
		Class:       st.Class.Name,
		UniqueID:    st.ID.UniqueID,
		DisplayName: st.ID.DisplayName,
		Tags:        st.ID.Tags,
	}
	if method, ok := st.ID.MethodName(); ok {
		entry.Method = method
	}
	return entry
}
