// Package lua provides a sandboxed Lua runtime for editor scripts.
//
// Scripts run with only the base, table, string and math libraries. File
// loading functions are removed and print is redirected to a writer chosen
// by the host, so a script can never draw on the terminal the editor owns.
//
// # State
//
//	state, err := lua.NewState(
//	    lua.WithExecutionTimeout(50 * time.Millisecond),
//	    lua.WithPrintWriter(logWriter),
//	)
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	if err := state.DoFile("highlight.lua"); err != nil {
//	    return err
//	}
//	results, err := state.Call("highlight", lua.LString("ls -la"), lua.LFalse)
//
// Each DoString, DoFile and Call runs under the execution timeout. Scripts
// that exceed it are interrupted and the call returns ErrExecutionTimeout.
package lua
