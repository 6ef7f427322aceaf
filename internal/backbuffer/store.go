package backbuffer

import (
	"sync"

	"github.com/zflat/go-back-buffer/internal/editor"
	"github.com/zflat/go-back-buffer/internal/screen"
)

// Key identifies one history slot: a window within a screen context.
type Key struct {
	Screen screen.ID
	Window editor.WindowID
}

// Entry is the remembered view state for a window's previous buffer.
// Buffer is a lookup-only id; the buffer may close after the entry is
// recorded, in which case the entry stops matching liveness checks
// rather than dangling.
type Entry struct {
	Buffer editor.BufferID
	Scroll int
	Cursor editor.Point
}

// Store maps history keys to entries. At most one entry exists per
// key; entries appear lazily on first observation of a window and are
// pruned when their window or screen goes away.
type Store struct {
	mu      sync.Mutex
	host    *editor.Editor
	entries map[Key]Entry
}

// NewStore creates an empty store bound to the host editor.
func NewStore(host *editor.Editor) *Store {
	return &Store{
		host:    host,
		entries: make(map[Key]Entry),
	}
}

// keyFor computes the history key for a window in the current screen
// context.
func (s *Store) keyFor(win *editor.Window) Key {
	return Key{
		Screen: s.host.Screens().CurrentID(),
		Window: win.ID(),
	}
}

// GetOrCreate resolves the entry for a window, creating it on first
// observation. A new entry is seeded with the window's current buffer
// and view state, so a toggle before any real switch finds the entry
// equal to the display and takes the fallback path. Repeated calls
// with no intervening switch return the same entry.
func (s *Store) GetOrCreate(win *editor.Window) (Key, Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.keyFor(win)
	if ent, ok := s.entries[key]; ok {
		return key, ent
	}

	ent := Entry{
		Buffer: win.Buffer(),
		Scroll: win.Scroll(),
		Cursor: win.Cursor(),
	}
	s.entries[key] = ent
	return key, ent
}

// Capture records the window's outgoing state. It runs immediately
// before the host replaces the window's buffer, so the window still
// shows what the user last saw. The entry is overwritten only when
// the outgoing buffer is live and differs from what is already
// stored; a dead or unchanged buffer leaves the entry alone.
func (s *Store) Capture(win *editor.Window) {
	key, _ := s.GetOrCreate(win)

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := win.Buffer()
	if !s.host.Buffers().IsLive(cur) {
		return
	}
	if ent := s.entries[key]; ent.Buffer == cur {
		return
	}
	s.entries[key] = Entry{
		Buffer: cur,
		Scroll: win.Scroll(),
		Cursor: win.Cursor(),
	}
}

// Cleanup prunes entries whose screen no longer exists or whose
// window handle is no longer valid. The window currently being
// destroyed is skipped: its handle is still live while the
// destruction hook runs, and the entry is removed by the invalidity
// check on a later pass once the host confirms the handle dead. With
// a single-screen host the screen check never prunes.
func (s *Store) Cleanup(dying *editor.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()

	screens := s.host.Screens()
	for key := range s.entries {
		if dying != nil && key.Window == dying.ID() {
			continue
		}
		if !screens.IsValid(key.Screen) || !s.host.WindowIsValid(key.Window) {
			delete(s.entries, key)
		}
	}
}

// Entry returns the stored entry for a key, if present.
func (s *Store) Entry(key Key) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.entries[key]
	return ent, ok
}

// Remove deletes the entry for a key.
func (s *Store) Remove(key Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	return true
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear drops all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[Key]Entry)
}
