// Package luaapi exposes the backbuffer mode to Lua plugin scripts.
//
// Hosts that script their editor with gopher-lua call Register on
// their LState; scripts then see a global `backbuffer` table:
//
//	backbuffer.enable()
//	backbuffer.disable()
//	if backbuffer.is_enabled() then ... end
//	ok, err = backbuffer.toggle()
//	n = backbuffer.history_len()
//
// toggle returns true on a successful switch, or false plus a message
// when nothing could be switched.
package luaapi

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/zflat/go-back-buffer/internal/backbuffer"
)

// ModuleName is the global table name installed by Register.
const ModuleName = "backbuffer"

// Module binds a Mode to a Lua state.
type Module struct {
	mode *backbuffer.Mode
}

// New creates a module for the given mode.
func New(mode *backbuffer.Mode) *Module {
	return &Module{mode: mode}
}

// Register installs the backbuffer table as a global in L.
func (m *Module) Register(L *lua.LState) {
	tbl := L.NewTable()
	L.SetField(tbl, "toggle", L.NewFunction(m.toggle))
	L.SetField(tbl, "enable", L.NewFunction(m.enable))
	L.SetField(tbl, "disable", L.NewFunction(m.disable))
	L.SetField(tbl, "is_enabled", L.NewFunction(m.isEnabled))
	L.SetField(tbl, "history_len", L.NewFunction(m.historyLen))
	L.SetGlobal(ModuleName, tbl)
}

// toggle switches the focused window to its previous buffer.
func (m *Module) toggle(L *lua.LState) int {
	if err := m.mode.SwitchToPrevious(nil); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

// enable turns the mode on.
func (m *Module) enable(L *lua.LState) int {
	m.mode.Enable()
	return 0
}

// disable turns the mode off.
func (m *Module) disable(L *lua.LState) int {
	m.mode.Disable()
	return 0
}

// isEnabled reports whether the mode is on.
func (m *Module) isEnabled(L *lua.LState) int {
	L.Push(lua.LBool(m.mode.IsEnabled()))
	return 1
}

// historyLen returns the number of history slots currently held.
func (m *Module) historyLen(L *lua.LState) int {
	L.Push(lua.LNumber(m.mode.Store().Len()))
	return 1
}
