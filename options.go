package ledit

import (
	"io"

	"github.com/dshills/ledit/internal/logging"
)

// Option configures an Editor.
type Option func(*Editor)

// WithInput sets where keystrokes are read from. Defaults to os.Stdin.
// Raw mode is only used when the reader is a terminal file.
func WithInput(r io.Reader) Option {
	return func(e *Editor) {
		e.in = r
	}
}

// WithOutput sets where the line is drawn. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Editor) {
		e.out = w
	}
}

// WithHistory shares an existing history.
func WithHistory(h *History) Option {
	return func(e *Editor) {
		if h != nil {
			e.history = h
		}
	}
}

// WithHighlighter sets the highlighter. nil writes the line plain.
func WithHighlighter(h Highlighter) Option {
	return func(e *Editor) {
		e.highlighter = h
	}
}

// WithMaxLineLength bounds the line in bytes. Values below 1 are ignored.
func WithMaxLineLength(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.maxLen = n
		}
	}
}

// WithReadSize sets how many bytes one read may return. Values below 8 are
// ignored, since the longest key sequence is six bytes.
func WithReadSize(n int) Option {
	return func(e *Editor) {
		if n >= 8 {
			e.readSize = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDebugLog writes debug logs in logfmt to w.
func WithDebugLog(w io.Writer) Option {
	return WithLogger(logging.New(logging.Config{
		Level:  logging.LevelDebug,
		Output: w,
		Prefix: "ledit",
	}))
}
