package terminal

import (
	"fmt"
	"sync"

	"golang.org/x/term"
)

// FileDescriptor is implemented by values backed by an OS file, such as
// *os.File.
type FileDescriptor interface {
	Fd() uintptr
}

// Lookup returns the descriptor behind v if v is a terminal.
func Lookup(v any) (int, bool) {
	f, ok := v.(FileDescriptor)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	return fd, true
}

// Session owns the saved attributes of one terminal for the duration of an
// editing session.
//
// Enter and Exit are safe to call from different goroutines, so a signal
// handler can restore the terminal while a read is blocked.
type Session struct {
	mu      sync.Mutex
	fd      int
	restore func() error
}

// NewSession creates a session for fd. The terminal is not touched until
// Enter is called.
func NewSession(fd int) *Session {
	return &Session{fd: fd}
}

// Fd returns the terminal's file descriptor.
func (s *Session) Fd() int {
	return s.fd
}

// Active reports whether the terminal is currently in editing mode.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restore != nil
}

// Enter disables echo and canonical input. Calling Enter on an active
// session is a no-op.
func (s *Session) Enter() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restore != nil {
		return nil
	}
	if !term.IsTerminal(s.fd) {
		return fmt.Errorf("fd %d: %w", s.fd, ErrNotTerminal)
	}

	restore, err := makeRaw(s.fd)
	if err != nil {
		return err
	}
	s.restore = restore
	return nil
}

// Exit restores the attributes saved by Enter. Calling Exit on an inactive
// session is a no-op.
func (s *Session) Exit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restore == nil {
		return nil
	}
	err := s.restore()
	s.restore = nil
	return err
}
