package renderer

import (
	"bytes"
	"io"

	"github.com/dshills/ledit/internal/logging"
	"github.com/dshills/ledit/internal/renderer/highlight"
)

// Renderer writes frames for one terminal line.
//
// A Renderer is used by one editing session at a time and is not safe for
// concurrent use.
type Renderer struct {
	out         io.Writer
	highlighter highlight.Highlighter
	logger      *logging.Logger

	prompt      string
	promptWidth int

	frame   bytes.Buffer
	scratch []byte
}

// New creates a renderer writing to out. A nil highlighter writes the line
// plain; a nil logger discards.
func New(out io.Writer, hl highlight.Highlighter, logger *logging.Logger) *Renderer {
	if hl == nil {
		hl = highlight.Plain
	}
	if logger == nil {
		logger = logging.Discard
	}
	return &Renderer{
		out:         out,
		highlighter: hl,
		logger:      logger.WithComponent("renderer"),
	}
}

// SetPrompt sets the prompt and its on-screen width. A width of zero or
// less is measured with MeasureWidth.
func (r *Renderer) SetPrompt(prompt string, width int) {
	if width <= 0 {
		width = MeasureWidth(prompt)
	}
	r.prompt = prompt
	r.promptWidth = width
}

// Prompt returns the prompt and its width.
func (r *Renderer) Prompt() (string, int) {
	return r.prompt, r.promptWidth
}

// Column returns the 1-based terminal column of the cursor.
func (r *Renderer) Column(cursor int) int {
	return r.promptWidth + cursor + 1
}

// Redraw clears the line and writes prompt, highlighted content and cursor
// position as one frame.
//
// Highlighter errors are logged and whatever the highlighter wrote before
// failing is kept; only write errors on the output are returned.
func (r *Renderer) Redraw(line []byte, cursor int, final bool) error {
	r.frame.Reset()
	r.frame.WriteString(SeqReset)
	r.frame.WriteString(SeqColumnZero)
	r.frame.WriteString(SeqClearLine)
	r.frame.WriteString(r.prompt)

	r.scratch = append(r.scratch[:0], line...)
	if err := r.highlighter.Highlight(&r.frame, r.scratch, final); err != nil {
		r.logger.Warn("highlighter failed: %v", err)
	}

	r.frame.Write(appendColumn(nil, r.Column(cursor)))
	return r.flush(r.frame.Bytes())
}

// SetCursor moves the terminal cursor to the buffer offset without
// redrawing the line.
func (r *Renderer) SetCursor(cursor int) error {
	r.scratch = appendColumn(r.scratch[:0], r.Column(cursor))
	return r.flush(r.scratch)
}

// Finish ends the line after submission.
func (r *Renderer) Finish() error {
	return r.flush([]byte(SeqFinish))
}

func (r *Renderer) flush(p []byte) error {
	_, err := r.out.Write(p)
	return err
}
