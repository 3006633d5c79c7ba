package selection

import "tsel/internal/platform"

// startListener observes the run and records each leaf test as its
// execution starts. This is the only reliable capture point for tests
// registered at runtime, which the structural filter never saw. Statically
// captured leaves were excluded from the execution plan and normally do
// not reach here; the collector's keyed append keeps the result correct
// even if one does.
type startListener struct {
	methods methodFilter
	out     *collector
}

func (l *startListener) ExecutionStarted(id platform.Identifier) {
	if !id.IsTest() {
		return
	}
	if !l.methods.allows(id) {
		return
	}
	l.out.add(id)
}
