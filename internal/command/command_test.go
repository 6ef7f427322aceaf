package command_test

import (
	"testing"

	"github.com/zflat/go-back-buffer/internal/command"
)

// stubHandler handles one action name for testing.
type stubHandler struct {
	namespace string
	action    string
	handled   []command.Action
	result    command.Result
}

func (h *stubHandler) HandleAction(action command.Action) command.Result {
	h.handled = append(h.handled, action)
	return h.result
}

func (h *stubHandler) CanHandle(actionName string) bool {
	return actionName == h.action
}

func (h *stubHandler) Namespace() string {
	return h.namespace
}

func TestActionNamespace(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"backbuffer.togglePrevious", "backbuffer"},
		{"window.close", "window"},
		{"bare", "bare"},
	}
	for _, tt := range tests {
		if got := (command.Action{Name: tt.name}).Namespace(); got != tt.want {
			t.Errorf("Namespace(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRegistryRouting(t *testing.T) {
	r := command.NewRegistry()
	h := &stubHandler{namespace: "backbuffer", action: "backbuffer.togglePrevious", result: command.Success()}
	r.Register(h)

	res := r.Execute(command.Action{Name: "backbuffer.togglePrevious"})
	if !res.IsOK() {
		t.Errorf("expected ok, got %v", res.Status)
	}
	if len(h.handled) != 1 {
		t.Fatalf("expected 1 handled action, got %d", len(h.handled))
	}
}

func TestRegistryUnknownNamespace(t *testing.T) {
	r := command.NewRegistry()

	res := r.Execute(command.Action{Name: "missing.op"})
	if !res.IsError() {
		t.Error("expected error for unknown namespace")
	}
}

func TestRegistryUnknownAction(t *testing.T) {
	r := command.NewRegistry()
	r.Register(&stubHandler{namespace: "backbuffer", action: "backbuffer.togglePrevious"})

	res := r.Execute(command.Action{Name: "backbuffer.bogus"})
	if !res.IsError() {
		t.Error("expected error for unknown action in known namespace")
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := command.NewRegistry()
	r.Register(&stubHandler{namespace: "backbuffer", action: "x"})

	if !r.Unregister("backbuffer") {
		t.Error("expected unregister to report removal")
	}
	if r.Unregister("backbuffer") {
		t.Error("expected second unregister to report nothing removed")
	}
}

func TestResultStatusString(t *testing.T) {
	tests := []struct {
		status command.ResultStatus
		want   string
	}{
		{command.StatusOK, "ok"},
		{command.StatusNoOp, "no-op"},
		{command.StatusError, "error"},
		{command.ResultStatus(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("status %d: got %q, want %q", tt.status, got, tt.want)
		}
	}
}
