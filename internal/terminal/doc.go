// Package terminal switches a terminal into the raw-ish input mode used by
// the line editor and restores it afterwards.
//
// Only echo and canonical (line-buffered) input are disabled. Output
// post-processing and signal generation stay on, so Ctrl+C still raises
// SIGINT and "\n" still moves to the start of the next line.
//
// # Usage
//
//	fd, ok := terminal.Lookup(os.Stdin)
//	if ok {
//	    s := terminal.NewSession(fd)
//	    if err := s.Enter(); err != nil {
//	        return err
//	    }
//	    defer s.Exit()
//	}
//
// Attribute changes are applied with flush semantics: input queued before
// the change is discarded, which matches how line editors switch modes.
package terminal
