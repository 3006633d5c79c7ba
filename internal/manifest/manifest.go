package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest declares the suites a selection run operates on.
type Manifest struct {
	Suites []SuiteSpec `yaml:"suites"`
}

// SuiteSpec declares one scope class: its tags, its statically-known
// tests and containers, and any nested classes declared inside it.
type SuiteSpec struct {
	Class      string          `yaml:"class"`
	Tags       []string        `yaml:"tags,omitempty"`
	Tests      []TestSpec      `yaml:"tests,omitempty"`
	Containers []ContainerSpec `yaml:"containers,omitempty"`
	Nested     []SuiteSpec     `yaml:"nested,omitempty"`
}

// TestSpec declares one statically-known leaf test.
type TestSpec struct {
	Name     string   `yaml:"name"`
	Method   string   `yaml:"method,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
	Template bool     `yaml:"template,omitempty"`
	Disabled bool     `yaml:"disabled,omitempty"`
}

// ContainerSpec declares a structural container. Dynamic is the number of
// tests the container's factory registers at runtime; those tests are
// invisible to static discovery.
type ContainerSpec struct {
	Name       string          `yaml:"name"`
	Tags       []string        `yaml:"tags,omitempty"`
	Dynamic    int             `yaml:"dynamic,omitempty"`
	Tests      []TestSpec      `yaml:"tests,omitempty"`
	Containers []ContainerSpec `yaml:"containers,omitempty"`
}

// Load reads and validates a manifest from a YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest file: %w", err)
	}

	if err := validate(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

func validate(m *Manifest) error {
	if len(m.Suites) == 0 {
		return fmt.Errorf("at least one suite is required")
	}
	seen := make(map[string]bool)
	for i := range m.Suites {
		if err := validateSuite(&m.Suites[i], seen); err != nil {
			return err
		}
	}
	return nil
}

func validateSuite(s *SuiteSpec, seen map[string]bool) error {
	if s.Class == "" {
		return fmt.Errorf("suite class name is required")
	}
	if seen[s.Class] {
		return fmt.Errorf("duplicate class %s", s.Class)
	}
	seen[s.Class] = true

	for _, test := range s.Tests {
		if test.Name == "" {
			return fmt.Errorf("class %s: test name is required", s.Class)
		}
	}
	for i := range s.Containers {
		if err := validateContainer(s.Class, &s.Containers[i]); err != nil {
			return err
		}
	}
	for i := range s.Nested {
		if err := validateSuite(&s.Nested[i], seen); err != nil {
			return err
		}
	}
	return nil
}

func validateContainer(class string, c *ContainerSpec) error {
	if c.Name == "" {
		return fmt.Errorf("class %s: container name is required", class)
	}
	if c.Dynamic < 0 {
		return fmt.Errorf("class %s: container %s: dynamic count must not be negative", class, c.Name)
	}
	for _, test := range c.Tests {
		if test.Name == "" {
			return fmt.Errorf("class %s: container %s: test name is required", class, c.Name)
		}
	}
	for i := range c.Containers {
		if err := validateContainer(class, &c.Containers[i]); err != nil {
			return err
		}
	}
	return nil
}
