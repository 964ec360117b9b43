// Package health tracks the dependencies reported by the readiness endpoint.
package health

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Checker reports whether a dependency is reachable
type Checker interface {
	HealthCheck(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) HealthCheck(ctx context.Context) error { return f(ctx) }

// Result is the outcome of one check
type Result struct {
	Name     string `json:"name"`
	Healthy  bool   `json:"healthy"`
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

// Registry manages named health checkers
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewRegistry creates a new health registry
func NewRegistry() *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
	}
}

// Register adds a checker to the registry
func (r *Registry) Register(name string, checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// Unregister removes a checker from the registry
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.checkers, name)
}

// List returns all registered checker names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckAll runs every checker concurrently and reports results sorted by name.
// The bool is true only when every check passed.
func (r *Registry) CheckAll(ctx context.Context) ([]Result, bool) {
	r.mu.RLock()
	checkers := make(map[string]Checker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make([]Result, 0, len(checkers))
	)
	for name, c := range checkers {
		name, c := name, c
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			err := c.HealthCheck(ctx)
			res := Result{Name: name, Healthy: err == nil, Duration: time.Since(start).String()}
			if err != nil {
				res.Error = err.Error()
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	healthy := true
	for _, res := range results {
		healthy = healthy && res.Healthy
	}
	return results, healthy
}
