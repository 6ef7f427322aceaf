package command

import "sync"

// Registry routes actions to namespace handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]NamespaceHandler
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]NamespaceHandler),
	}
}

// Register adds a namespace handler. Registering a handler for an
// existing namespace replaces the previous one.
func (r *Registry) Register(h NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[h.Namespace()] = h
}

// Unregister removes the handler for a namespace.
func (r *Registry) Unregister(namespace string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[namespace]; !ok {
		return false
	}
	delete(r.handlers, namespace)
	return true
}

// Execute routes the action to its namespace handler.
func (r *Registry) Execute(action Action) Result {
	r.mu.RLock()
	h, ok := r.handlers[action.Namespace()]
	r.mu.RUnlock()

	if !ok {
		return Errorf("no handler for namespace %q", action.Namespace())
	}
	if !h.CanHandle(action.Name) {
		return Errorf("unknown action: %s", action.Name)
	}
	return h.HandleAction(action)
}
