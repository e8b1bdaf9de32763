package terminal

import "errors"

// Sentinel errors for the terminal package.
var (
	// ErrNotTerminal is returned when the descriptor is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrUnsupported is returned on platforms without termios support.
	ErrUnsupported = errors.New("terminal mode switching not supported on this platform")
)
