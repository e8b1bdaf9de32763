package ledit

import (
	"errors"

	"github.com/dshills/ledit/internal/engine/buffer"
)

// Errors returned by the editor.
var (
	// ErrTerminalMode is returned when the input is a terminal whose mode
	// cannot be switched. Nothing is read in that case.
	ErrTerminalMode = errors.New("ledit: cannot switch terminal mode")

	// ErrClosed is returned by ReadLine after Close.
	ErrClosed = errors.New("ledit: editor closed")

	// ErrLineTooLong matches the error logged when typed input does not fit.
	// ReadLine never returns it; the input is dropped and editing goes on.
	ErrLineTooLong = buffer.ErrLineTooLong
)
