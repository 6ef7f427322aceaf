// Package command provides action routing for user-invocable editor commands.
package command

import "strings"

// Action is a named command invocation with optional arguments.
type Action struct {
	// Name is the fully qualified action name, e.g. "backbuffer.togglePrevious".
	Name string

	// Args holds optional handler-specific arguments.
	Args map[string]any
}

// Namespace returns the prefix before the first dot, or the whole
// name if there is no dot.
func (a Action) Namespace() string {
	if i := strings.IndexByte(a.Name, '.'); i >= 0 {
		return a.Name[:i]
	}
	return a.Name
}

// NamespaceHandler handles all actions within a namespace.
type NamespaceHandler interface {
	// HandleAction handles an action within this namespace.
	HandleAction(action Action) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Namespace returns the namespace prefix (e.g. "backbuffer").
	Namespace() string
}
