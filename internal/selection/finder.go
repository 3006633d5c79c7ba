package selection

import "tsel/internal/platform"

// SelectedTest is one selected executable test unit: the class selection
// was requested for plus the identifier of the test to run.
type SelectedTest struct {
	Class platform.Class
	ID    platform.Identifier
}

// Finder selects the executable tests of a class by running one
// discovery-and-execute cycle against the launcher. Static leaves are
// captured during discovery, dynamic tests as their execution starts;
// both phases feed one deduplicated result per call.
type Finder struct {
	launcher platform.Launcher
	tags     tagPredicate
	methods  methodFilter
}

// NewFinder builds a finder for the given launcher, tag groups and
// optional method allow-set. An invalid group name returns a
// *ConfigurationError and no finder.
func NewFinder(launcher platform.Launcher, groups GroupConfig, includedMethods []string) (*Finder, error) {
	tags, err := composeTagPredicate(groups)
	if err != nil {
		return nil, err
	}
	return &Finder{
		launcher: launcher,
		tags:     tags,
		methods:  newMethodFilter(includedMethods),
	}, nil
}

// Find returns the selected tests of the given class. A nested class
// yields an empty result without touching the launcher: its tests are
// only reachable through the enclosing class, and selecting them twice
// would duplicate work downstream. Each call uses a fresh collector,
// filter and listener; a platform failure is returned as a
// *DiscoveryError with no partial result.
func (f *Finder) Find(class platform.Class) ([]SelectedTest, error) {
	if class.IsNested() {
		return nil, nil
	}

	out := newCollector()
	req := platform.Request{
		Selector: class,
		ConfigParams: map[string]string{
			platform.AutoRegistrationParam: "true",
		},
		Filter: &structuralFilter{tags: f.tags, methods: f.methods, out: out},
	}

	if err := f.launcher.Execute(req, &startListener{methods: f.methods, out: out}); err != nil {
		return nil, &DiscoveryError{Class: class.Name, Err: err}
	}

	ids := out.list()
	selected := make([]SelectedTest, 0, len(ids))
	for _, id := range ids {
		selected = append(selected, SelectedTest{Class: class, ID: id})
	}
	return selected, nil
}
