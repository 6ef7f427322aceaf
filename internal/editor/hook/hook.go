// Package hook provides pre-operation interception for host editor operations.
package hook

// Op names a host operation that can be intercepted.
type Op string

const (
	// OpShowBuffer fires before a window's displayed buffer is replaced.
	OpShowBuffer Op = "buffer.show"

	// OpCloseWindow fires before a window is destroyed.
	OpCloseWindow Op = "window.close"
)

// Standard hook priorities. Higher values run first.
const (
	// PrioritySystem is for hooks the host itself installs.
	PrioritySystem = 1000
	// PriorityFramework is for extension framework hooks.
	PriorityFramework = 500
	// PriorityUser is for user hooks.
	PriorityUser = 0
)

// Event describes a host operation about to execute. Window is always
// the host window handle the operation targets; Buffer is the incoming
// buffer handle for OpShowBuffer events and nil otherwise. Handles are
// untyped here so the registry does not depend on the host object model;
// consumers assert the embedding editor's concrete types.
type Event struct {
	Op     Op
	Window any
	Buffer any
}

// PreOpHook runs immediately before a host operation executes.
type PreOpHook interface {
	// Name returns a unique identifier for this hook. Registering a
	// second hook with the same name replaces the first.
	Name() string

	// Priority returns the hook priority. Higher values run first.
	Priority() int

	// PreOp is called before the operation. Returning false cancels it.
	PreOp(ev *Event) bool
}

// PreOpFunc wraps a function as a PreOpHook.
type PreOpFunc struct {
	name     string
	priority int
	fn       func(ev *Event) bool
}

// NewPreOpFunc creates a new PreOpFunc hook.
func NewPreOpFunc(name string, priority int, fn func(ev *Event) bool) *PreOpFunc {
	return &PreOpFunc{
		name:     name,
		priority: priority,
		fn:       fn,
	}
}

// Name implements PreOpHook.
func (f *PreOpFunc) Name() string { return f.name }

// Priority implements PreOpHook.
func (f *PreOpFunc) Priority() int { return f.priority }

// PreOp implements PreOpHook.
func (f *PreOpFunc) PreOp(ev *Event) bool {
	if f.fn == nil {
		return true
	}
	return f.fn(ev)
}
