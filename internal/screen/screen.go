// Package screen models the host's optional workspace/screen capability.
//
// Some hosts partition windows into named screens (workspaces); most do not.
// Provider is the capability interface, SingleScreen is the null-object
// implementation used when the capability is absent: a constant screen id
// and a validity check that never fails. Consumers probe for nothing; they
// are handed a Provider and the degraded configuration behaves identically
// to a host with exactly one permanent screen.
package screen

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ID identifies a screen/workspace.
type ID string

// DefaultID is the sentinel screen id used when the host has no
// workspace capability.
const DefaultID ID = "default"

// Errors returned by screen operations.
var (
	ErrScreenNotFound = errors.New("screen not found")
	ErrLastScreen     = errors.New("cannot remove the last screen")
)

// Provider exposes the host's screen context.
type Provider interface {
	// CurrentID returns the id of the screen the user is on.
	CurrentID() ID

	// IsValid reports whether the given screen still exists.
	IsValid(id ID) bool

	// IDs returns all existing screen ids.
	IDs() []ID
}

// SingleScreen is the Provider used when the host has no workspace
// capability. Every window lives on the default screen and screen
// validity is never a reason to discard state.
type SingleScreen struct{}

// CurrentID implements Provider.
func (SingleScreen) CurrentID() ID { return DefaultID }

// IsValid implements Provider. It always returns true.
func (SingleScreen) IsValid(ID) bool { return true }

// IDs implements Provider.
func (SingleScreen) IDs() []ID { return []ID{DefaultID} }

// Workspaces is a Provider for hosts that partition windows into
// multiple screens. Screens can be created, removed, and switched.
type Workspaces struct {
	mu      sync.RWMutex
	order   []ID
	names   map[ID]string
	current ID
}

// NewWorkspaces creates a Workspaces provider with one initial screen.
func NewWorkspaces() *Workspaces {
	first := ID(uuid.New().String())
	return &Workspaces{
		order:   []ID{first},
		names:   map[ID]string{first: "main"},
		current: first,
	}
}

// Create adds a new screen and returns its id. The current screen is
// unchanged.
func (w *Workspaces) Create(name string) ID {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := ID(uuid.New().String())
	w.order = append(w.order, id)
	w.names[id] = name
	return id
}

// Remove deletes a screen. Removing the current screen switches to the
// first remaining one. The last screen cannot be removed.
func (w *Workspaces) Remove(id ID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.names[id]; !ok {
		return ErrScreenNotFound
	}
	if len(w.order) == 1 {
		return ErrLastScreen
	}

	delete(w.names, id)
	for i, existing := range w.order {
		if existing == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	if w.current == id {
		w.current = w.order[0]
	}
	return nil
}

// SwitchTo makes the given screen current.
func (w *Workspaces) SwitchTo(id ID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.names[id]; !ok {
		return ErrScreenNotFound
	}
	w.current = id
	return nil
}

// Name returns the display name of a screen.
func (w *Workspaces) Name(id ID) string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.names[id]
}

// CurrentID implements Provider.
func (w *Workspaces) CurrentID() ID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// IsValid implements Provider.
func (w *Workspaces) IsValid(id ID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.names[id]
	return ok
}

// IDs implements Provider.
func (w *Workspaces) IDs() []ID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ids := make([]ID, len(w.order))
	copy(ids, w.order)
	return ids
}
