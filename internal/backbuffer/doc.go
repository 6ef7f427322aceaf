// Package backbuffer implements a per-window "switch to previous
// buffer" minor mode, the editor analogue of an application switcher:
// one keystroke flips a window between the two buffers it most
// recently displayed, restoring scroll position and cursor location.
//
// # How history is kept
//
// Each window has at most one history slot, keyed by (screen id,
// window id). The slot always lags the display by one step: a
// pre-operation hook on buffer display rewrites the slot with the
// window's outgoing buffer and view state immediately before the host
// swaps buffers. No post-processing is needed; the "previous buffer"
// falls out of the capture ordering.
//
// Slots hold buffer ids, never buffer objects. Liveness is checked
// against the host registry at use time, so a slot whose buffer has
// since closed simply stops matching and the toggle falls back to the
// host's most-recently-used choice.
//
// # Lifecycle
//
// Mode is the on/off switch. Enable registers two pre-operation hooks
// (capture on buffer display, pruning on window destruction);
// Disable unregisters them and drops all slots. Both are idempotent:
// enabling twice installs nothing twice, disabling twice is harmless.
//
// # Usage
//
//	ed := editor.New()
//	mode := backbuffer.New(ed)
//	mode.Enable()
//	...
//	mode.SwitchToPrevious(nil) // toggle in the focused window
//
// The command surface in Handler exposes the same operations as
// routable actions, and luaapi exposes them to Lua plugin scripts.
package backbuffer
