package lua

import (
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Sandbox restricts what scripts can reach.
type Sandbox struct {
	L     *lua.LState
	print io.Writer
}

// removedGlobals can load code from disk or strings.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
}

// NewSandbox creates a sandbox for L. Script print output goes to w.
func NewSandbox(L *lua.LState, w io.Writer) *Sandbox {
	if w == nil {
		w = io.Discard
	}
	return &Sandbox{L: L, print: w}
}

// Install removes unsafe globals and redirects print.
func (s *Sandbox) Install() {
	for _, name := range removedGlobals {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.L.SetGlobal("print", s.L.NewFunction(s.safePrint))
}

// safePrint mirrors Lua's print: tostring on each argument, tab separated,
// newline terminated.
func (s *Sandbox) safePrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(s.print, strings.Join(parts, "\t"))
	return 0
}
