package backbuffer

import (
	"sync"

	"github.com/zflat/go-back-buffer/internal/editor"
	"github.com/zflat/go-back-buffer/internal/editor/hook"
	"github.com/zflat/go-back-buffer/internal/log"
)

// Hook names installed by the mode.
const (
	hookCapture = "backbuffer.capture"
	hookCleanup = "backbuffer.cleanup"
)

// Mode is the global enable/disable switch for the minor mode. It owns
// the history store and installs the two pre-operation hooks that keep
// it current.
type Mode struct {
	mu      sync.Mutex
	host    *editor.Editor
	store   *Store
	logger  *log.Logger
	enabled bool
}

// Option configures a Mode.
type Option func(*Mode)

// WithLogger attaches a logger for debug traces of captures and prunes.
func WithLogger(l *log.Logger) Option {
	return func(m *Mode) {
		if l != nil {
			m.logger = l.WithComponent("backbuffer")
		}
	}
}

// New creates the mode bound to a host editor. The mode starts
// disabled; call Enable to install the hooks.
func New(host *editor.Editor, opts ...Option) *Mode {
	m := &Mode{
		host:   host,
		store:  NewStore(host),
		logger: log.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Store returns the history store.
func (m *Mode) Store() *Store { return m.store }

// IsEnabled reports whether the hooks are installed.
func (m *Mode) IsEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// Enable installs the capture and cleanup hooks. Enabling an enabled
// mode is a no-op; the hooks are never installed twice.
func (m *Mode) Enable() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.enabled {
		return
	}

	hooks := m.host.Hooks()
	hooks.RegisterPre(hook.OpShowBuffer,
		hook.NewPreOpFunc(hookCapture, hook.PriorityFramework, m.onShowBuffer))
	hooks.RegisterPre(hook.OpCloseWindow,
		hook.NewPreOpFunc(hookCleanup, hook.PriorityFramework, m.onCloseWindow))

	m.enabled = true
	m.logger.Debug("enabled")
}

// Disable removes both hooks and drops all history. Disabling a
// disabled mode is a no-op.
func (m *Mode) Disable() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled {
		return
	}

	hooks := m.host.Hooks()
	hooks.UnregisterPre(hook.OpShowBuffer, hookCapture)
	hooks.UnregisterPre(hook.OpCloseWindow, hookCleanup)

	m.store.Clear()
	m.enabled = false
	m.logger.Debug("disabled")
}

// onShowBuffer captures the outgoing view state of the window about to
// display a different buffer. It never cancels the operation.
func (m *Mode) onShowBuffer(ev *hook.Event) bool {
	win, ok := ev.Window.(*editor.Window)
	if !ok {
		return true
	}
	m.store.Capture(win)
	m.logger.Debug("capture window=%s buffer=%s scroll=%d",
		win.ID(), win.Buffer(), win.Scroll())
	return true
}

// onCloseWindow prunes slots for windows and screens that no longer
// exist. The window being destroyed is still valid here; its own slot
// goes away on a later pass.
func (m *Mode) onCloseWindow(ev *hook.Event) bool {
	win, _ := ev.Window.(*editor.Window)
	before := m.store.Len()
	m.store.Cleanup(win)
	if pruned := before - m.store.Len(); pruned > 0 {
		m.logger.Debug("pruned %d stale history entries", pruned)
	}
	return true
}

// SwitchToPrevious toggles the window to its remembered previous
// buffer, restoring scroll and cursor. A nil window means the focused
// one. When the remembered buffer is dead, or equals the current one
// (no real history yet), the window falls back to the host's most
// recently used other buffer. The store is not updated here: the
// display change this causes re-enters the capture hook, which records
// the buffer being switched away from and arms the next toggle.
func (m *Mode) SwitchToPrevious(win *editor.Window) error {
	if win == nil {
		win = m.host.Focused()
	}
	if win == nil {
		return editor.ErrNoWindow
	}
	if !win.IsValid() {
		return editor.ErrInvalidWindow
	}

	_, ent := m.store.GetOrCreate(win)

	if m.host.Buffers().IsLive(ent.Buffer) && ent.Buffer != win.Buffer() {
		return m.host.ShowBufferAt(win, ent.Buffer, ent.Scroll, ent.Cursor)
	}

	other, ok := m.host.Buffers().MostRecentOther(win.Buffer())
	if !ok {
		// Single buffer open; nothing to switch to.
		return nil
	}
	return m.host.ShowBuffer(win, other.ID())
}
