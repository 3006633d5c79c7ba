package platform

// FilterResult is the verdict of a discovery filter for one node.
type FilterResult int

const (
	// Included keeps the node (and lets discovery continue into children).
	Included FilterResult = iota
	// Excluded drops the node and prunes its entire subtree.
	Excluded
)

// DiscoveryFilter is applied by a launcher once per discovered node,
// top-down, parent before child, after static discovery completes.
type DiscoveryFilter interface {
	Apply(d *Descriptor) FilterResult
}

// Registrar accepts tests registered at runtime by a container's factory.
type Registrar interface {
	Register(d *Descriptor)
}

// FactoryFunc runs when a dynamic container executes and registers the
// container's runtime children.
type FactoryFunc func(r Registrar)

// Descriptor is a node of the static discovery tree rooted at a scope
// class. Containers may carry a Factory that registers further tests at
// runtime; those children are invisible to static discovery.
type Descriptor struct {
	Identifier

	Children []*Descriptor

	// MayRegisterTests marks containers that can add nodes at runtime.
	// Leaf tests never register anything.
	MayRegisterTests bool

	// Factory registers runtime children when the container executes.
	Factory FactoryFunc

	// Body is the test body of a leaf. It is never invoked during
	// selection runs; the interceptor policy skips it.
	Body func()

	// Template marks a leaf whose body runs as a templated invocation.
	Template bool

	// Disabled marks a declared test that is not actually runnable
	// (a skipped placeholder); it is never selected.
	Disabled bool
}

// IsTest reports whether the descriptor is a runnable leaf test.
func (d *Descriptor) IsTest() bool {
	return d.Kind == KindTest && !d.Disabled
}
