package backbuffer

import (
	"errors"

	"github.com/zflat/go-back-buffer/internal/command"
	"github.com/zflat/go-back-buffer/internal/editor"
)

// Action names for backbuffer operations.
const (
	// ActionTogglePrevious swaps the focused window to its previous buffer.
	ActionTogglePrevious = "backbuffer.togglePrevious"
	// ActionEnable turns the mode on.
	ActionEnable = "backbuffer.enable"
	// ActionDisable turns the mode off.
	ActionDisable = "backbuffer.disable"
	// ActionStatus reports whether the mode is enabled.
	ActionStatus = "backbuffer.status"
)

// Handler exposes the mode as routable commands.
type Handler struct {
	mode *Mode
}

// NewHandler creates a handler for the mode.
func NewHandler(mode *Mode) *Handler {
	return &Handler{mode: mode}
}

// Namespace returns the backbuffer namespace.
func (h *Handler) Namespace() string {
	return "backbuffer"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionTogglePrevious, ActionEnable, ActionDisable, ActionStatus:
		return true
	}
	return false
}

// HandleAction processes a backbuffer action.
func (h *Handler) HandleAction(action command.Action) command.Result {
	switch action.Name {
	case ActionTogglePrevious:
		return h.toggle()
	case ActionEnable:
		h.mode.Enable()
		return command.SuccessWithMessage("backbuffer enabled")
	case ActionDisable:
		h.mode.Disable()
		return command.SuccessWithMessage("backbuffer disabled")
	case ActionStatus:
		if h.mode.IsEnabled() {
			return command.SuccessWithMessage("backbuffer is enabled")
		}
		return command.SuccessWithMessage("backbuffer is disabled")
	default:
		return command.Errorf("unknown backbuffer action: %s", action.Name)
	}
}

// toggle invokes the switch on the focused window.
func (h *Handler) toggle() command.Result {
	win := h.mode.host.Focused()
	if win == nil {
		return command.NoOpWithMessage("backbuffer: no window")
	}

	before := win.Buffer()
	if err := h.mode.SwitchToPrevious(win); err != nil {
		if errors.Is(err, editor.ErrNoWindow) || errors.Is(err, editor.ErrInvalidWindow) {
			return command.NoOpWithMessage("backbuffer: no window")
		}
		return command.Error(err)
	}
	if win.Buffer() == before {
		return command.NoOpWithMessage("backbuffer: no previous buffer")
	}

	name := string(win.Buffer())
	if buf, ok := h.mode.host.Buffers().Get(win.Buffer()); ok {
		name = buf.Name()
	}
	return command.SuccessWithMessage("switched to " + name)
}
