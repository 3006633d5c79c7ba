package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath  string
	ManifestFile string

	// Report settings
	ReportFile string
	ReportDir  string

	// Selection settings
	Processors int

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:  DefaultProjectPath,
		ManifestFile: DefaultManifestFile,
		ReportFile:   DefaultReportFile,
		ReportDir:    DefaultReportDir,
		Processors:   DefaultProcessors,
		Flags:        Flags{Processors: DefaultProcessors},
	}
}

// Load creates a config and applies flags. A .env file in the project
// directory is loaded best-effort before env overrides are read.
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))

	if flags.Processors > 0 {
		cfg.Processors = flags.Processors
	}

	return cfg
}

// GetManifestPath returns the manifest path; flag wins over the
// TSEL_MANIFEST env var, which wins over the default.
func (c *Config) GetManifestPath() string {
	if c.Flags.Manifest != "" {
		return c.resolve(c.Flags.Manifest)
	}
	if env := os.Getenv("TSEL_MANIFEST"); env != "" {
		return c.resolve(env)
	}
	return filepath.Join(c.ProjectPath, c.ManifestFile)
}

// GetReportPath returns the full path of the selection report file.
// Resolves to an absolute path so select and view always read/write the
// same file regardless of cwd.
func (c *Config) GetReportPath() string {
	p := c.Flags.Output
	if p == "" {
		if env := os.Getenv("TSEL_REPORT"); env != "" {
			p = env
		} else {
			p = filepath.Join(c.ProjectPath, c.ReportDir, c.ReportFile)
		}
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ProjectPath, p)
}
