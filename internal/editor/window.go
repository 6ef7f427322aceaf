package editor

import (
	"sync"

	"github.com/google/uuid"
)

// WindowID identifies a window. Like buffer ids, window ids are never
// reused, so a stale id fails validity checks rather than aliasing a
// newer window.
type WindowID string

// Window is a viewport pane displaying one buffer at a time, with its
// own scroll offset and cursor position.
type Window struct {
	mu     sync.RWMutex
	id     WindowID
	buffer BufferID
	scroll int // first visible line
	cursor Point
	valid  bool
}

// newWindow creates a valid window displaying the given buffer.
func newWindow(buf BufferID) *Window {
	return &Window{
		id:     WindowID(uuid.New().String()),
		buffer: buf,
		valid:  true,
	}
}

// ID returns the window's identity.
func (w *Window) ID() WindowID {
	return w.id
}

// Buffer returns the id of the buffer the window currently displays.
func (w *Window) Buffer() BufferID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.buffer
}

// Scroll returns the window's vertical scroll offset (first visible line).
func (w *Window) Scroll() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.scroll
}

// Cursor returns the cursor position within the displayed buffer.
func (w *Window) Cursor() Point {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cursor
}

// IsValid reports whether the window handle still refers to a live window.
func (w *Window) IsValid() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.valid
}

// SetScroll sets the vertical scroll offset.
func (w *Window) SetScroll(scroll int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if scroll < 0 {
		scroll = 0
	}
	w.scroll = scroll
}

// SetCursor sets the cursor position.
func (w *Window) SetCursor(p Point) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cursor = p
}

// setView replaces buffer, scroll, and cursor as one update. There is
// no observable intermediate state: readers see either the old view or
// the new one.
func (w *Window) setView(buf BufferID, scroll int, cursor Point) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if scroll < 0 {
		scroll = 0
	}
	w.buffer = buf
	w.scroll = scroll
	w.cursor = cursor
}

// invalidate marks the window handle dead.
func (w *Window) invalidate() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.valid = false
}
