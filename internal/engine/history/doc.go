// Package history provides the accepted-line history for the line editor.
//
// A Store is an append-only ordered list of lines plus a scroll cursor used
// while one editing session browses past entries with Up and Down:
//
//	store := history.NewStore()
//	store.Commit("alpha")
//	store.Commit("beta")
//
//	store.BeginSession()  // scroll cursor just past "beta"
//	line, _ := store.Prev()  // "beta"
//	line, _ = store.Prev()   // "alpha"
//	line, _ = store.Next()   // "beta"
//	line, _ = store.Next()   // "" (back to the not-yet-recalled slot)
//
// # Lifecycle
//
// The caller creates a Store once and shares it between editing sessions.
// Entries are never removed. Lines are committed only when a session ends;
// recalling an entry never changes it.
//
// # Scroll Cursor
//
// The scroll cursor is always in [0, Len()]. Len() itself is the sentinel
// meaning "nothing recalled"; BeginSession resets to it.
package history
