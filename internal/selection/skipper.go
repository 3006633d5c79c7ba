package selection

import "tsel/internal/platform"

// Skipper suppresses test bodies during a selection run. Ordinary test
// methods, template invocations and dynamic test bodies are skipped;
// factory methods proceed, since suppressing a factory would prevent its
// dynamic children from ever being registered and observed.
type Skipper struct{}

func (Skipper) Intercept(inv platform.Invocation) {
	if inv.Kind == platform.InvokeTestFactory {
		inv.Proceed()
	}
}
