package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"sync"
)

// Registry is an in-memory counter store exposed as plain text.
type Registry struct {
	mu     sync.RWMutex
	counts map[string]uint64
}

func New() *Registry {
	return &Registry{counts: make(map[string]uint64)}
}

// Wrap counts every request served by next under name.
func (r *Registry) Wrap(name string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.Inc(name)
		next.ServeHTTP(w, req)
	})
}

func (r *Registry) Inc(name string) {
	r.mu.Lock()
	r.counts[name]++
	r.mu.Unlock()
}

func (r *Registry) count(name string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[name]
}

// Handler writes "name count" lines sorted by name.
func (r *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		r.mu.RLock()
		keys := make([]string, 0, len(r.counts))
		for k := range r.counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s %d\n", k, r.counts[k])
		}
		r.mu.RUnlock()
	})
}
