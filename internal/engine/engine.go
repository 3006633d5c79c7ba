package engine

import (
	"fmt"

	"tsel/internal/platform"
)

// Suite declares one scope class and its static discovery tree.
type Suite struct {
	Class platform.Class
	Root  *platform.Descriptor
}

// Engine is an in-process platform.Launcher over a registry of suites.
// One Execute call runs one synchronous discovery-and-execute cycle:
// discovery applies the request filter top-down with Excluded pruning the
// subtree, execution walks the retained plan, reports every started node
// to the listener, and runs container factories through the interceptor
// so runtime-registered tests surface as well.
type Engine struct {
	suites      map[string]*Suite
	interceptor platform.Interceptor
}

// New creates an engine. A nil interceptor means every invocation
// proceeds.
func New(interceptor platform.Interceptor) *Engine {
	return &Engine{
		suites:      make(map[string]*Suite),
		interceptor: interceptor,
	}
}

// Register adds a suite to the registry.
func (e *Engine) Register(s *Suite) error {
	if s == nil || s.Class.Name == "" {
		return fmt.Errorf("suite must have a class name")
	}
	if _, dup := e.suites[s.Class.Name]; dup {
		return fmt.Errorf("suite already registered for class %s", s.Class.Name)
	}
	e.suites[s.Class.Name] = s
	return nil
}

// Suites returns the registered suites in registration-independent order.
func (e *Engine) Suites() []*Suite {
	out := make([]*Suite, 0, len(e.suites))
	for _, s := range e.suites {
		out = append(out, s)
	}
	return out
}

// Execute implements platform.Launcher.
func (e *Engine) Execute(req platform.Request, listener platform.ExecutionListener) error {
	s, ok := e.suites[req.Selector.Name]
	if !ok {
		return fmt.Errorf("no suite registered for class %s", req.Selector.Name)
	}

	plan := discover(s.Root, req.Filter)
	if plan == nil {
		return nil
	}

	run := &cycle{
		engine:   e,
		listener: listener,
		autoReg:  req.ConfigParams[platform.AutoRegistrationParam] == "true",
	}
	run.execute(plan)
	return nil
}

// planNode is one retained node of the execution plan.
type planNode struct {
	desc     *platform.Descriptor
	children []*planNode
}

// discover applies the filter top-down. Excluded prunes the node and its
// whole subtree; Included keeps the node and recurses into children.
func discover(d *platform.Descriptor, filter platform.DiscoveryFilter) *planNode {
	if filter != nil && filter.Apply(d) == platform.Excluded {
		return nil
	}
	node := &planNode{desc: d}
	for _, child := range d.Children {
		if kept := discover(child, filter); kept != nil {
			node.children = append(node.children, kept)
		}
	}
	return node
}

// cycle holds the per-Execute state of the run phase.
type cycle struct {
	engine   *Engine
	listener platform.ExecutionListener
	autoReg  bool
}

func (c *cycle) execute(n *planNode) {
	c.started(n.desc.Identifier)

	if n.desc.Kind == platform.KindTest {
		c.invokeBody(n.desc)
		return
	}

	for _, child := range n.children {
		c.execute(child)
	}

	if n.desc.Factory != nil && c.autoReg {
		c.intercept(platform.InvokeTestFactory, func() {
			n.desc.Factory(c)
		})
	}
}

// Register implements platform.Registrar: a factory handed a descriptor
// registers and immediately executes it as a runtime child.
func (c *cycle) Register(d *platform.Descriptor) {
	if d == nil || d.Disabled {
		return
	}
	c.started(d.Identifier)

	if d.Kind == platform.KindTest {
		c.intercept(platform.InvokeDynamicTest, func() {
			if d.Body != nil {
				d.Body()
			}
		})
		return
	}

	for _, child := range d.Children {
		c.Register(child)
	}
	if d.Factory != nil {
		c.intercept(platform.InvokeTestFactory, func() {
			d.Factory(c)
		})
	}
}

func (c *cycle) invokeBody(d *platform.Descriptor) {
	kind := platform.InvokeTestMethod
	if d.Template {
		kind = platform.InvokeTestTemplate
	}
	c.intercept(kind, func() {
		if d.Body != nil {
			d.Body()
		}
	})
}

func (c *cycle) intercept(kind platform.InvocationKind, proceed func()) {
	if c.engine.interceptor == nil {
		proceed()
		return
	}
	c.engine.interceptor.Intercept(platform.Invocation{Kind: kind, Proceed: proceed})
}

func (c *cycle) started(id platform.Identifier) {
	if c.listener != nil {
		c.listener.ExecutionStarted(id)
	}
}
