package selection

import "tsel/internal/platform"

// methodFilter restricts leaf tests to an explicit allow-set of method
// names. An empty filter allows everything. Identifiers without a
// resolvable method source are never excluded; only an exact, resolvable
// method match is restrictive.
type methodFilter map[string]struct{}

func newMethodFilter(names []string) methodFilter {
	if len(names) == 0 {
		return nil
	}
	f := make(methodFilter, len(names))
	for _, name := range names {
		f[name] = struct{}{}
	}
	return f
}

// allows reports whether the identifier is eligible under the filter.
func (f methodFilter) allows(id platform.Identifier) bool {
	if len(f) == 0 || !id.IsTest() {
		return true
	}
	method, ok := id.MethodName()
	if !ok {
		return true
	}
	_, ok = f[method]
	return ok
}
