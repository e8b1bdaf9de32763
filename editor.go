package ledit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dshills/ledit/internal/engine/buffer"
	"github.com/dshills/ledit/internal/input/key"
	"github.com/dshills/ledit/internal/logging"
	"github.com/dshills/ledit/internal/renderer"
	"github.com/dshills/ledit/internal/terminal"
)

// Defaults for New.
const (
	DefaultMaxLineLength = buffer.DefaultMaxLength
	DefaultReadSize      = 255
)

// Editor reads lines from a terminal.
//
// ReadLine calls must not overlap. Close may be called from any goroutine,
// for example a signal handler, while ReadLine is blocked.
type Editor struct {
	in          io.Reader
	out         io.Writer
	history     *History
	highlighter Highlighter
	maxLen      int
	readSize    int
	logger      *logging.Logger

	mu      sync.Mutex
	session *terminal.Session
	closed  bool
}

// New creates an editor reading os.Stdin and drawing on os.Stdout.
func New(opts ...Option) *Editor {
	e := &Editor{
		in:       os.Stdin,
		out:      os.Stdout,
		history:  NewHistory(),
		maxLen:   DefaultMaxLineLength,
		readSize: DefaultReadSize,
		logger:   logging.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithComponent("editor")

	if fd, ok := terminal.Lookup(e.in); ok {
		e.session = terminal.NewSession(fd)
	}
	return e
}

// History returns the editor's history.
func (e *Editor) History() *History {
	return e.history
}

// Prompt is ReadLine with the prompt width measured from the prompt text.
func (e *Editor) Prompt(prompt string) (string, error) {
	return e.ReadLine(prompt, 0)
}

// ReadLine draws prompt and edits one line until Enter or end of input.
//
// width is the number of columns the prompt occupies; zero or less
// measures it. The accepted line is appended to History in both cases.
// After Enter the error is nil; at end of input it is io.EOF; other read
// errors are wrapped. The terminal mode is restored before ReadLine
// returns.
func (e *Editor) ReadLine(prompt string, width int) (line string, err error) {
	if err := e.enter(); err != nil {
		return "", err
	}
	defer func() {
		if rerr := e.exit(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	s := &session{
		buf:     buffer.NewBuffer(buffer.WithMaxLength(e.maxLen)),
		dec:     key.NewDecoder(),
		r:       renderer.New(e.out, e.highlighter, e.logger),
		history: e.history,
		logger:  e.logger,
	}
	s.r.SetPrompt(prompt, width)
	return s.run(e.in, e.readSize)
}

// Close restores the terminal if a ReadLine is in progress and makes
// further ReadLine calls fail with ErrClosed.
func (e *Editor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	if e.session == nil {
		return nil
	}
	return e.session.Exit()
}

func (e *Editor) enter() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if e.session == nil {
		return nil
	}
	if err := e.session.Enter(); err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalMode, err)
	}
	return nil
}

func (e *Editor) exit() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil
	}
	if err := e.session.Exit(); err != nil {
		e.logger.Warn("restore terminal: %v", err)
		return fmt.Errorf("%w: %w", ErrTerminalMode, err)
	}
	return nil
}

// session is the state of one ReadLine call.
type session struct {
	buf     *buffer.Buffer
	dec     *key.Decoder
	r       *renderer.Renderer
	history *History
	logger  *logging.Logger
}

func (s *session) run(in io.Reader, readSize int) (string, error) {
	s.history.BeginSession()
	s.logger.Debug("session start, %d history entries", s.history.Len())

	var readErr error
	if err := s.r.Redraw(s.buf.Bytes(), s.buf.Cursor(), false); err != nil {
		readErr = fmt.Errorf("draw: %w", err)
	}

	chunk := make([]byte, readSize)
	for readErr == nil {
		n, err := in.Read(chunk)
		if n > 0 {
			ev := s.dec.Decode(chunk[:n])
			if ev.Command == key.Submit {
				break
			}
			if werr := s.apply(ev); werr != nil {
				readErr = fmt.Errorf("draw: %w", werr)
				break
			}
		}
		switch {
		case errors.Is(err, io.EOF), n == 0 && err == nil:
			readErr = io.EOF
		case err != nil:
			readErr = fmt.Errorf("read: %w", err)
		}
	}
	s.dec.Reset()

	line := s.buf.String()
	s.finish(line)
	s.logger.Debug("session end: %q (%v)", line, readErr)
	return line, readErr
}

// finish draws the committed line and records it. Write errors are only
// logged; the line is returned regardless.
func (s *session) finish(line string) {
	if err := s.r.Redraw(s.buf.Bytes(), s.buf.Cursor(), true); err != nil {
		s.logger.Warn("final redraw: %v", err)
	}
	s.history.Commit(line)
	if err := s.r.Finish(); err != nil {
		s.logger.Warn("finish line: %v", err)
	}
}

// apply executes one decoded event and draws its effect.
func (s *session) apply(ev key.Event) error {
	s.logger.Debug("event %s", ev)

	switch cmd := ev.Command; {
	case ev.IsNoOp():
		return nil
	case cmd.IsMotion():
		return s.moved(s.move(cmd))
	case cmd.IsHistory():
		return s.recall(cmd)
	case cmd.IsEdit():
		return s.edit(ev)
	}
	return nil
}

func (s *session) edit(ev key.Event) error {
	changed := false
	switch ev.Command {
	case key.Insert:
		if err := s.buf.Insert(ev.Text); err != nil {
			s.logger.Debug("insert dropped, %d bytes free: %v", s.buf.Remaining(), err)
			return nil
		}
		changed = true
	case key.Backspace:
		changed = s.buf.Backspace()
	case key.DeleteForward:
		changed = s.buf.DeleteForward()
	}
	if !changed {
		return nil
	}
	return s.redraw()
}

func (s *session) move(cmd key.Command) bool {
	switch cmd {
	case key.CursorLeft:
		return s.buf.MoveLeft()
	case key.CursorRight:
		return s.buf.MoveRight()
	case key.Home:
		return s.buf.MoveHome()
	case key.End:
		return s.buf.MoveEnd()
	case key.WordLeft:
		return s.buf.MoveWordLeft()
	case key.WordRight:
		return s.buf.MoveWordRight()
	}
	return false
}

func (s *session) recall(cmd key.Command) error {
	var (
		entry string
		ok    bool
	)
	if cmd == key.HistoryPrev {
		entry, ok = s.history.Prev()
	} else {
		entry, ok = s.history.Next()
	}
	if !ok {
		return nil
	}
	s.buf.Replace([]byte(entry))
	return s.redraw()
}

func (s *session) redraw() error {
	return s.r.Redraw(s.buf.Bytes(), s.buf.Cursor(), false)
}

func (s *session) moved(ok bool) error {
	if !ok {
		return nil
	}
	return s.r.SetCursor(s.buf.Cursor())
}
