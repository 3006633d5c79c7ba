package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tsel/internal/config"
	"tsel/internal/selection"
)

// JSONStore stores selection reports in a JSON file under the configured
// report path.
type JSONStore struct {
	cfg *config.Config
}

// NewJSONStore returns a Store that reads/writes the config's report path.
func NewJSONStore(cfg *config.Config) *JSONStore {
	return &JSONStore{cfg: cfg}
}

// Save writes the selection report to the configured JSON file.
func (s *JSONStore) Save(selected []selection.SelectedTest, classes int, duration time.Duration, workers int) error {
	entries := make([]Entry, 0, len(selected))
	for _, st := range selected {
		entries = append(entries, NewEntry(st))
	}

	output := Output{
		Meta: Meta{
			TotalClasses:    classes,
			SelectedTests:   len(selected),
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Selections: entries,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := s.cfg.GetReportPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads the last selection report from the configured JSON file.
func (s *JSONStore) Load() (*Output, error) {
	path := s.cfg.GetReportPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var output Output
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &output, nil
}
