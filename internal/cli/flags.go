package cli

import "tsel/internal/config"

// Flags holds command-line flags
type Flags struct {
	Manifest       string
	Class          string
	ExcludedGroups []string
	IncludedGroups []string
	Methods        []string
	Output         string
	Processors     int
	TestCases      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Manifest:       f.Manifest,
		Class:          f.Class,
		ExcludedGroups: f.ExcludedGroups,
		IncludedGroups: f.IncludedGroups,
		Methods:        f.Methods,
		Output:         f.Output,
		Processors:     f.Processors,
		TestCases:      f.TestCases,
	}
}
