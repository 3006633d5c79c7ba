package execution

import (
	"sort"
	"sync"
	"time"

	"tsel/internal/config"
	"tsel/internal/platform"
	"tsel/internal/selection"
	"tsel/internal/ui"
)

// ClassSelection is the outcome of selecting one class.
type ClassSelection struct {
	Class platform.Class
	Tests []selection.SelectedTest
	Err   error
}

// Pool runs selection cycles for many classes across parallel workers.
// Every Find call allocates its own collector, filter and listener, so
// distinct classes are safe to select concurrently.
type Pool struct {
	config   *config.Config
	finder   *selection.Finder
	progress *ui.ProgressBar
}

// NewPool creates a new Pool.
func NewPool(cfg *config.Config, finder *selection.Finder) *Pool {
	return &Pool{config: cfg, finder: finder}
}

// SetProgress sets the progress bar for the pool.
func (p *Pool) SetProgress(progress *ui.ProgressBar) {
	p.progress = progress
}

// Select runs selection for all classes and returns per-class outcomes
// sorted by class name.
func (p *Pool) Select(classes []platform.Class) ([]ClassSelection, time.Duration, error) {
	if len(classes) == 0 {
		return nil, 0, nil
	}

	queue := make(chan platform.Class, len(classes))
	results := make(chan ClassSelection, len(classes))
	for _, class := range classes {
		queue <- class
	}
	close(queue)

	var mu sync.Mutex
	var completed, selected int
	startTime := time.Now()
	workerCount := p.config.Processors
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for class := range queue {
				tests, err := p.finder.Find(class)
				results <- ClassSelection{Class: class, Tests: tests, Err: err}
				mu.Lock()
				completed++
				selected += len(tests)
				if p.progress != nil {
					p.progress.Update(completed, selected)
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var all []ClassSelection
	for result := range results {
		all = append(all, result)
	}
	if p.progress != nil {
		p.progress.Finish()
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Class.Name < all[j].Class.Name
	})
	return all, time.Since(startTime), nil
}
