package hook

import (
	"sort"
	"sync"
)

// Registry manages pre-operation hooks per host operation with
// priority-based ordering.
type Registry struct {
	mu  sync.RWMutex
	pre map[Op][]PreOpHook
}

// NewRegistry creates a new hook registry.
func NewRegistry() *Registry {
	return &Registry{
		pre: make(map[Op][]PreOpHook),
	}
}

// RegisterPre adds a pre-operation hook for op. Hooks are keyed by name:
// registering a hook whose name is already present replaces the existing
// one, so repeated registration is idempotent.
func (r *Registry) RegisterPre(op Op, h PreOpHook) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hooks := r.pre[op]
	for i, existing := range hooks {
		if existing.Name() == h.Name() {
			hooks[i] = h
			r.sortPre(op)
			return
		}
	}

	r.pre[op] = append(hooks, h)
	r.sortPre(op)
}

// UnregisterPre removes a pre-operation hook by name. It reports
// whether a hook was removed, so unregistering twice is harmless.
func (r *Registry) UnregisterPre(op Op, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	hooks := r.pre[op]
	for i, h := range hooks {
		if h.Name() == name {
			r.pre[op] = append(hooks[:i], hooks[i+1:]...)
			return true
		}
	}
	return false
}

// RunPre runs all pre-operation hooks for op in priority order.
// Returns false if any hook cancels the operation.
func (r *Registry) RunPre(op Op, ev *Event) bool {
	r.mu.RLock()
	hooks := make([]PreOpHook, len(r.pre[op]))
	copy(hooks, r.pre[op])
	r.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreOp(ev) {
			return false
		}
	}
	return true
}

// PreCount returns the number of hooks registered for op.
func (r *Registry) PreCount(op Op) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pre[op])
}

// PreNames returns the names of all hooks for op in execution order.
func (r *Registry) PreNames(op Op) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.pre[op]))
	for i, h := range r.pre[op] {
		names[i] = h.Name()
	}
	return names
}

// Clear removes all hooks for all operations.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pre = make(map[Op][]PreOpHook)
}

// sortPre sorts op's hooks by priority descending (higher first).
func (r *Registry) sortPre(op Op) {
	hooks := r.pre[op]
	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Priority() > hooks[j].Priority()
	})
}
