package selection

import "fmt"

// ConfigurationError reports an invalid tag-group filter at construction
// time. No finder is usable after it.
type ConfigurationError struct {
	Group string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid tag group %q: %v", e.Group, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// DiscoveryError reports that the platform failed to build or run a
// discovery request for one class. The call yields no partial result.
type DiscoveryError struct {
	Class string
	Err   error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery failed for class %q: %v", e.Class, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}
