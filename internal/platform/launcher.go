package platform

// AutoRegistrationParam is the configuration parameter enabling runtime
// registration of factory-provided tests. Discovery of dynamic tests only
// works when a request sets it to "true".
const AutoRegistrationParam = "tsel.extensions.autoregistration"

// Class is a scope unit: the top-level class selection is requested for.
// A non-empty Enclosing marks a nested class, which is never processed
// independently of its outer class.
type Class struct {
	Name      string
	Enclosing string
}

// IsNested reports whether the class is declared inside another class.
func (c Class) IsNested() bool {
	return c.Enclosing != ""
}

// Request is one discovery-and-execute request handed to a launcher.
type Request struct {
	Selector     Class
	ConfigParams map[string]string
	Filter       DiscoveryFilter
}

// ExecutionListener observes the run. The launcher calls ExecutionStarted
// for every node (static or dynamically registered) as its execution
// begins. Implementations must tolerate concurrent calls.
type ExecutionListener interface {
	ExecutionStarted(id Identifier)
}

// Invocation is one interceptable call the launcher is about to make.
type Invocation struct {
	// Kind of the call being intercepted.
	Kind InvocationKind
	// Proceed performs the underlying call.
	Proceed func()
}

// InvocationKind distinguishes the interceptable call sites.
type InvocationKind int

const (
	// InvokeTestMethod is an ordinary test method body.
	InvokeTestMethod InvocationKind = iota
	// InvokeTestTemplate is one invocation of a templated test.
	InvokeTestTemplate
	// InvokeDynamicTest is the body of a runtime-registered test.
	InvokeDynamicTest
	// InvokeTestFactory is a factory method that registers dynamic tests.
	InvokeTestFactory
)

// Interceptor decides, per invocation, whether the launcher performs the
// underlying call or skips it. Returning without calling inv.Proceed
// skips the invocation; surrounding lifecycle still runs.
type Interceptor interface {
	Intercept(inv Invocation)
}

// Launcher is the discovery/execution platform contract. Execute runs one
// synchronous discovery-and-execute cycle: it applies the request's
// discovery filter once per discovered node (top-down, Excluded pruning
// descendants), executes the retained plan, and reports every started
// node to the listener.
type Launcher interface {
	Execute(req Request, listener ExecutionListener) error
}
