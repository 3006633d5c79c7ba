package selection

import (
	"sync"

	"tsel/internal/platform"
)

// collector is the shared result sequence for one discovery cycle. Both
// the structural filter and the execution observer append to it; the
// launcher may drive them from multiple workers, so appends take a lock.
// An identifier is recorded at most once per cycle, keyed by its platform
// unique ID.
type collector struct {
	mu   sync.Mutex
	seen map[string]struct{}
	ids  []platform.Identifier
}

func newCollector() *collector {
	return &collector{seen: make(map[string]struct{})}
}

// add appends the identifier unless it was already recorded.
func (c *collector) add(id platform.Identifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.seen[id.UniqueID]; dup {
		return
	}
	c.seen[id.UniqueID] = struct{}{}
	c.ids = append(c.ids, id)
}

// list returns a copy of the recorded identifiers in append order.
func (c *collector) list() []platform.Identifier {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]platform.Identifier, len(c.ids))
	copy(out, c.ids)
	return out
}
