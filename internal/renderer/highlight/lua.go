package highlight

import (
	"fmt"
	"io"
	"strconv"

	lua "github.com/yuin/gopher-lua"

	pluginlua "github.com/dshills/ledit/internal/plugin/lua"
)

// DefaultLuaFunction is the global a highlight script defines.
const DefaultLuaFunction = "highlight"

// Lua calls a script function fn(line, final) and writes the string it
// returns. A nil return writes the line unchanged.
//
// Scripts get an "sgr" table with helpers:
//
//	sgr.code(31)            -- "\27[31m"
//	sgr.color("#ff8800")    -- foreground from hex or color name
//	sgr.reset()             -- "\27[0m"
type Lua struct {
	state     *pluginlua.State
	fn        string
	trueColor bool
}

// NewLua loads the script at path into a fresh sandboxed state.
func NewLua(path, fn string, trueColor bool, opts ...pluginlua.StateOption) (*Lua, error) {
	state, err := pluginlua.NewState(opts...)
	if err != nil {
		return nil, err
	}
	h := newLua(state, fn, trueColor)
	if err := state.DoFile(path); err != nil {
		state.Close()
		return nil, fmt.Errorf("load highlight script %s: %w", path, err)
	}
	if !state.HasFunction(h.fn) {
		state.Close()
		return nil, fmt.Errorf("highlight script %s: %q: %w", path, h.fn, pluginlua.ErrNotFunction)
	}
	return h, nil
}

// NewLuaString is like NewLua but takes the script source.
func NewLuaString(source, fn string, trueColor bool, opts ...pluginlua.StateOption) (*Lua, error) {
	state, err := pluginlua.NewState(opts...)
	if err != nil {
		return nil, err
	}
	h := newLua(state, fn, trueColor)
	if err := state.DoString(source); err != nil {
		state.Close()
		return nil, fmt.Errorf("load highlight script: %w", err)
	}
	if !state.HasFunction(h.fn) {
		state.Close()
		return nil, fmt.Errorf("highlight script: %q: %w", h.fn, pluginlua.ErrNotFunction)
	}
	return h, nil
}

func newLua(state *pluginlua.State, fn string, trueColor bool) *Lua {
	if fn == "" {
		fn = DefaultLuaFunction
	}
	h := &Lua{state: state, fn: fn, trueColor: trueColor}
	state.RegisterModule("sgr", map[string]lua.LGFunction{
		"code":  h.luaCode,
		"color": h.luaColor,
		"reset": h.luaReset,
	})
	return h
}

// Highlight implements Highlighter.
func (h *Lua) Highlight(w io.Writer, line []byte, final bool) error {
	results, err := h.state.Call(h.fn, lua.LString(line), lua.LBool(final))
	if err != nil {
		return fmt.Errorf("lua %s: %w", h.fn, err)
	}

	if len(results) == 0 || results[0] == lua.LNil {
		_, err = w.Write(line)
		return err
	}
	s, ok := results[0].(lua.LString)
	if !ok {
		return fmt.Errorf("lua %s returned %s, want string", h.fn, results[0].Type())
	}
	_, err = io.WriteString(w, string(s))
	return err
}

// Close releases the Lua state.
func (h *Lua) Close() error {
	return h.state.Close()
}

func (h *Lua) luaCode(L *lua.LState) int {
	n := L.CheckInt(1)
	L.Push(lua.LString("\x1b[" + strconv.Itoa(n) + "m"))
	return 1
}

func (h *Lua) luaColor(L *lua.LState) int {
	c, err := ParseColor(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(lua.LString(SGR(tcellForeground(c), h.trueColor)))
	return 1
}

func (h *Lua) luaReset(L *lua.LState) int {
	L.Push(lua.LString(Reset))
	return 1
}
