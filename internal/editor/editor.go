package editor

import (
	"sync"

	"github.com/zflat/go-back-buffer/internal/editor/hook"
	"github.com/zflat/go-back-buffer/internal/screen"
)

// Editor coordinates buffers, windows, and the hook registry. It is the
// in-process reference implementation of the host surface extensions
// plug into.
//
// Both display changes and window destruction run their pre-operation
// hooks synchronously, on the caller's goroutine, strictly before any
// state is mutated. A hook therefore always observes the outgoing
// state: the buffer the user last saw, a window handle that is still
// valid.
type Editor struct {
	mu      sync.RWMutex
	buffers *Registry
	screens screen.Provider
	hooks   *hook.Registry
	windows []*Window
	focused *Window
}

// Option configures an Editor.
type Option func(*Editor)

// WithScreens attaches a workspace/screen provider. Without it the
// editor behaves as a single-screen host.
func WithScreens(p screen.Provider) Option {
	return func(e *Editor) {
		if p != nil {
			e.screens = p
		}
	}
}

// New creates an editor with no windows and no buffers.
func New(opts ...Option) *Editor {
	e := &Editor{
		buffers: NewRegistry(),
		screens: screen.SingleScreen{},
		hooks:   hook.NewRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Buffers returns the buffer registry.
func (e *Editor) Buffers() *Registry { return e.buffers }

// Screens returns the workspace/screen provider.
func (e *Editor) Screens() screen.Provider { return e.screens }

// Hooks returns the pre-operation hook registry.
func (e *Editor) Hooks() *hook.Registry { return e.hooks }

// NewWindow creates a window displaying the given buffer. The first
// window created becomes focused. Window creation is not a hooked
// operation; extensions observe new windows lazily on first use.
func (e *Editor) NewWindow(buf *Buffer) (*Window, error) {
	if buf == nil || !e.buffers.IsLive(buf.ID()) {
		return nil, ErrBufferNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	w := newWindow(buf.ID())
	e.windows = append(e.windows, w)
	if e.focused == nil {
		e.focused = w
	}
	e.buffers.Touch(buf.ID())
	return w, nil
}

// Windows returns all live windows.
func (e *Editor) Windows() []*Window {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*Window, len(e.windows))
	copy(out, e.windows)
	return out
}

// WindowByID returns the live window with the given id.
func (e *Editor) WindowByID(id WindowID) (*Window, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, w := range e.windows {
		if w.id == id {
			return w, true
		}
	}
	return nil, false
}

// WindowIsValid reports whether id refers to a live window.
func (e *Editor) WindowIsValid(id WindowID) bool {
	_, ok := e.WindowByID(id)
	return ok
}

// Focused returns the focused window, or nil if there are no windows.
func (e *Editor) Focused() *Window {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.focused
}

// Focus makes the given window the focused one.
func (e *Editor) Focus(w *Window) error {
	if w == nil || !w.IsValid() {
		return ErrInvalidWindow
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.focused = w
	return nil
}

// ShowBuffer displays the buffer in the window with default view state
// (top of buffer, cursor at origin). Pre-operation hooks for
// hook.OpShowBuffer run before the swap and may veto it.
func (e *Editor) ShowBuffer(w *Window, id BufferID) error {
	return e.ShowBufferAt(w, id, 0, Point{})
}

// ShowBufferAt displays the buffer in the window, restoring the given
// scroll offset and cursor position as a single visible update.
// Pre-operation hooks for hook.OpShowBuffer run before the swap, while
// the window still shows its outgoing buffer.
func (e *Editor) ShowBufferAt(w *Window, id BufferID, scroll int, cursor Point) error {
	if w == nil || !w.IsValid() {
		return &OpError{Op: "show-buffer", Err: ErrInvalidWindow}
	}
	buf, ok := e.buffers.Get(id)
	if !ok {
		return &OpError{Op: "show-buffer", Target: string(id), Err: ErrBufferNotFound}
	}

	ev := &hook.Event{Op: hook.OpShowBuffer, Window: w, Buffer: buf}
	if !e.hooks.RunPre(hook.OpShowBuffer, ev) {
		return &OpError{Op: "show-buffer", Target: string(id), Err: ErrOpVetoed}
	}

	w.setView(id, scroll, buf.ClampPoint(cursor))
	e.buffers.Touch(id)
	return nil
}

// CloseWindow destroys the window. Pre-operation hooks for
// hook.OpCloseWindow run while the handle is still valid; after they
// complete the handle is invalidated and the window removed. Focus
// moves to the first remaining window.
func (e *Editor) CloseWindow(w *Window) error {
	if w == nil || !w.IsValid() {
		return &OpError{Op: "close-window", Err: ErrInvalidWindow}
	}

	ev := &hook.Event{Op: hook.OpCloseWindow, Window: w}
	if !e.hooks.RunPre(hook.OpCloseWindow, ev) {
		return &OpError{Op: "close-window", Target: string(w.ID()), Err: ErrOpVetoed}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	w.invalidate()
	for i, existing := range e.windows {
		if existing == w {
			e.windows = append(e.windows[:i], e.windows[i+1:]...)
			break
		}
	}
	if e.focused == w {
		if len(e.windows) > 0 {
			e.focused = e.windows[0]
		} else {
			e.focused = nil
		}
	}
	return nil
}

// CloseBuffer removes the buffer from the registry. Windows displaying
// it are switched to the most recently used other buffer, if one
// exists. The buffer is dead before any window switches away, so
// hooks observing the swap see a non-live outgoing buffer.
func (e *Editor) CloseBuffer(id BufferID) error {
	if !e.buffers.Close(id) {
		return &OpError{Op: "close-buffer", Target: string(id), Err: ErrBufferNotFound}
	}

	for _, w := range e.Windows() {
		if w.Buffer() != id {
			continue
		}
		if other, ok := e.buffers.MostRecentOther(id); ok {
			// Best effort; a vetoing hook leaves the window on the
			// dead buffer, which liveness checks render inert.
			_ = e.ShowBuffer(w, other.ID())
		}
	}
	return nil
}
