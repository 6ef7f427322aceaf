package backbuffer_test

import (
	"errors"
	"testing"

	"github.com/zflat/go-back-buffer/internal/backbuffer"
	"github.com/zflat/go-back-buffer/internal/editor"
	"github.com/zflat/go-back-buffer/internal/editor/hook"
)

func newModeFixture(t *testing.T) (*editor.Editor, *backbuffer.Mode, *editor.Window, *editor.Buffer, *editor.Buffer, *editor.Buffer) {
	t.Helper()
	ed := editor.New()
	a := ed.Buffers().Open("a.txt", "", "alpha line 1\nalpha line 2\nalpha line 3\nalpha line 4")
	b := ed.Buffers().Open("b.txt", "", "beta line 1\nbeta line 2")
	c := ed.Buffers().Open("c.txt", "", "gamma")
	w, err := ed.NewWindow(a)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	mode := backbuffer.New(ed)
	mode.Enable()
	return ed, mode, w, a, b, c
}

// TestToggleTransposition covers the end-to-end scenario: a window on
// a.txt opens b.txt, toggles back to a.txt at the remembered position,
// and toggles again to return to b.txt.
func TestToggleTransposition(t *testing.T) {
	ed, mode, w, a, b, _ := newModeFixture(t)

	w.SetScroll(2)
	w.SetCursor(editor.Point{Line: 3, Column: 5})

	if err := ed.ShowBuffer(w, b.ID()); err != nil {
		t.Fatalf("ShowBuffer: %v", err)
	}

	if err := mode.SwitchToPrevious(w); err != nil {
		t.Fatalf("SwitchToPrevious: %v", err)
	}
	if w.Buffer() != a.ID() {
		t.Fatal("first toggle must return to a.txt")
	}
	if w.Scroll() != 2 {
		t.Errorf("scroll not restored: got %d, want 2", w.Scroll())
	}
	if w.Cursor() != (editor.Point{Line: 3, Column: 5}) {
		t.Errorf("cursor not restored: got %v", w.Cursor())
	}

	// The toggle's own swap re-armed history with b.txt.
	if err := mode.SwitchToPrevious(w); err != nil {
		t.Fatalf("SwitchToPrevious: %v", err)
	}
	if w.Buffer() != b.ID() {
		t.Error("second toggle must return to b.txt")
	}
}

// TestLagInvariant: after displaying B1, B2, B3 the history holds B2.
func TestLagInvariant(t *testing.T) {
	ed, mode, w, _, b, c := newModeFixture(t)

	if err := ed.ShowBuffer(w, b.ID()); err != nil {
		t.Fatalf("ShowBuffer: %v", err)
	}
	if err := ed.ShowBuffer(w, c.ID()); err != nil {
		t.Fatalf("ShowBuffer: %v", err)
	}

	_, ent := mode.Store().GetOrCreate(w)
	if ent.Buffer != b.ID() {
		t.Errorf("history must hold the buffer shown before the last switch, got %v", ent.Buffer)
	}
}

// TestDeadBufferFallback: a closed history buffer is never displayed;
// the toggle takes the host's MRU fallback instead.
func TestDeadBufferFallback(t *testing.T) {
	ed, mode, w, a, b, c := newModeFixture(t)

	if err := ed.ShowBuffer(w, b.ID()); err != nil {
		t.Fatalf("ShowBuffer: %v", err)
	}
	// History now holds a.txt. Kill it.
	if err := ed.CloseBuffer(a.ID()); err != nil {
		t.Fatalf("CloseBuffer: %v", err)
	}

	if err := mode.SwitchToPrevious(w); err != nil {
		t.Fatalf("SwitchToPrevious: %v", err)
	}
	if w.Buffer() == a.ID() {
		t.Fatal("toggle must never display a dead buffer")
	}
	if w.Buffer() != c.ID() {
		t.Errorf("expected MRU fallback to c.txt, got %v", w.Buffer())
	}
}

// TestFirstUseFallback: with no switches observed, the seeded entry
// equals the current buffer and the toggle takes the fallback path.
func TestFirstUseFallback(t *testing.T) {
	_, mode, w, a, _, c := newModeFixture(t)

	if err := mode.SwitchToPrevious(w); err != nil {
		t.Fatalf("SwitchToPrevious: %v", err)
	}
	if w.Buffer() == a.ID() {
		t.Fatal("first toggle must fall back, not stay put")
	}
	// c.txt was opened last, so it is the most recent other buffer.
	if w.Buffer() != c.ID() {
		t.Errorf("expected fallback to c.txt, got %v", w.Buffer())
	}
}

// TestWindowIsolation: toggling in one window never disturbs another.
func TestWindowIsolation(t *testing.T) {
	ed, mode, w1, a, b, c := newModeFixture(t)
	w2, err := ed.NewWindow(c)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}

	// Build history in both windows.
	if err := ed.ShowBuffer(w1, b.ID()); err != nil {
		t.Fatalf("ShowBuffer: %v", err)
	}
	if err := ed.ShowBuffer(w2, a.ID()); err != nil {
		t.Fatalf("ShowBuffer: %v", err)
	}

	w2Buffer := w2.Buffer()
	_, w2EntryBefore := mode.Store().GetOrCreate(w2)

	if err := mode.SwitchToPrevious(w1); err != nil {
		t.Fatalf("SwitchToPrevious: %v", err)
	}

	if w2.Buffer() != w2Buffer {
		t.Error("toggling w1 must not change w2's displayed buffer")
	}
	if _, after := mode.Store().GetOrCreate(w2); after != w2EntryBefore {
		t.Error("toggling w1 must not change w2's history entry")
	}
	if w1.Buffer() != a.ID() {
		t.Error("w1 must have toggled to its own previous buffer")
	}
}

// TestCleanupOnDestruction: destroyed windows' entries become
// unretrievable on the next pass, live windows' entries survive.
func TestCleanupOnDestruction(t *testing.T) {
	ed, mode, w1, _, b, c := newModeFixture(t)
	w2, err := ed.NewWindow(b)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	w3, err := ed.NewWindow(c)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}

	k1, _ := mode.Store().GetOrCreate(w1)
	k2, _ := mode.Store().GetOrCreate(w2)
	k3, _ := mode.Store().GetOrCreate(w3)

	if err := ed.CloseWindow(w1); err != nil {
		t.Fatalf("CloseWindow: %v", err)
	}
	// Pruning is deferred: the dying window's slot goes on the next
	// destruction pass.
	if err := ed.CloseWindow(w2); err != nil {
		t.Fatalf("CloseWindow: %v", err)
	}

	if _, ok := mode.Store().Entry(k1); ok {
		t.Error("entry for the first destroyed window must be gone")
	}
	if _, ok := mode.Store().Entry(k2); !ok {
		t.Error("the just-destroyed window's entry is pruned on a later pass, not this one")
	}
	if _, ok := mode.Store().Entry(k3); !ok {
		t.Error("entry for a live window must be unaffected")
	}
}

// TestIdempotentEnableDisable: repeated enables install nothing twice,
// repeated disables are harmless.
func TestIdempotentEnableDisable(t *testing.T) {
	ed, mode, w, _, b, _ := newModeFixture(t)

	mode.Enable()
	mode.Enable()
	if got := ed.Hooks().PreCount(hook.OpShowBuffer); got != 1 {
		t.Errorf("expected 1 capture hook, got %d", got)
	}
	if got := ed.Hooks().PreCount(hook.OpCloseWindow); got != 1 {
		t.Errorf("expected 1 cleanup hook, got %d", got)
	}

	mode.Disable()
	mode.Disable()
	if got := ed.Hooks().PreCount(hook.OpShowBuffer); got != 0 {
		t.Errorf("expected 0 capture hooks after disable, got %d", got)
	}
	if mode.IsEnabled() {
		t.Error("mode must report disabled")
	}

	// Switches while disabled must not record history.
	if err := ed.ShowBuffer(w, b.ID()); err != nil {
		t.Fatalf("ShowBuffer: %v", err)
	}
	if mode.Store().Len() != 0 {
		t.Error("disabled mode must not capture history")
	}
}

// TestDisableDropsHistory: disabling discards the store; re-enabling
// starts from scratch with freshly seeded entries.
func TestDisableDropsHistory(t *testing.T) {
	ed, mode, w, _, b, _ := newModeFixture(t)

	if err := ed.ShowBuffer(w, b.ID()); err != nil {
		t.Fatalf("ShowBuffer: %v", err)
	}
	if mode.Store().Len() == 0 {
		t.Fatal("expected history before disable")
	}

	mode.Disable()
	if mode.Store().Len() != 0 {
		t.Error("disable must drop all history")
	}

	mode.Enable()
	// No switches since re-enable: the entry reseeds to the current
	// buffer and the toggle falls back.
	if err := mode.SwitchToPrevious(w); err != nil {
		t.Fatalf("SwitchToPrevious: %v", err)
	}
	if w.Buffer() == b.ID() {
		t.Error("after re-enable the first toggle must take the fallback path")
	}
}

// TestToggleWithoutWindows verifies the defensive no-op surface.
func TestToggleWithoutWindows(t *testing.T) {
	ed := editor.New()
	mode := backbuffer.New(ed)
	mode.Enable()

	if err := mode.SwitchToPrevious(nil); !errors.Is(err, editor.ErrNoWindow) {
		t.Errorf("expected ErrNoWindow, got %v", err)
	}
}

// TestToggleSingleBuffer: one open buffer means no history and no
// fallback candidate; the toggle is a silent no-op.
func TestToggleSingleBuffer(t *testing.T) {
	ed := editor.New()
	only := ed.Buffers().Open("only.txt", "", "")
	w, err := ed.NewWindow(only)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	mode := backbuffer.New(ed)
	mode.Enable()

	if err := mode.SwitchToPrevious(w); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if w.Buffer() != only.ID() {
		t.Error("window must stay on its only buffer")
	}
}

// TestToggleDefaultsToFocusedWindow verifies the nil-window default.
func TestToggleDefaultsToFocusedWindow(t *testing.T) {
	ed, mode, w, a, b, _ := newModeFixture(t)

	if err := ed.ShowBuffer(w, b.ID()); err != nil {
		t.Fatalf("ShowBuffer: %v", err)
	}
	if err := mode.SwitchToPrevious(nil); err != nil {
		t.Fatalf("SwitchToPrevious: %v", err)
	}
	if w.Buffer() != a.ID() {
		t.Error("nil window must mean the focused window")
	}
}
