package platform

// Kind classifies a discovered node as a container or a leaf test.
type Kind int

const (
	// KindContainer is a structural node that may hold further nodes.
	KindContainer Kind = iota
	// KindTest is an executable leaf test.
	KindTest
)

// MethodSource describes where a test comes from, when that is resolvable
// (parameterized and dynamically named tests may have no method source).
type MethodSource struct {
	Class  string
	Method string
}

// Identifier is the runtime identity of a discovered node. Two identifiers
// denote the same node iff their UniqueID values are equal; display names
// and tags play no part in identity.
type Identifier struct {
	UniqueID    string
	DisplayName string
	Kind        Kind
	Tags        []string
	Source      *MethodSource
}

// IsTest reports whether the identifier denotes a leaf test.
func (id Identifier) IsTest() bool {
	return id.Kind == KindTest
}

// IsContainer reports whether the identifier denotes a container node.
func (id Identifier) IsContainer() bool {
	return id.Kind == KindContainer
}

// MethodName returns the source method name and whether one is resolvable.
func (id Identifier) MethodName() (string, bool) {
	if id.Source == nil || id.Source.Method == "" {
		return "", false
	}
	return id.Source.Method, true
}

// HasTag reports whether the identifier carries the given tag.
func (id Identifier) HasTag(tag string) bool {
	for _, t := range id.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
