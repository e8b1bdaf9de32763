package highlight

import "io"

// Highlighter renders a line for display.
//
// final is true exactly once per editing session, after the line was
// submitted, so the highlighter can draw the committed form.
type Highlighter interface {
	Highlight(w io.Writer, line []byte, final bool) error
}

// Func adapts an ordinary function to Highlighter.
type Func func(w io.Writer, line []byte, final bool) error

// Highlight calls f.
func (f Func) Highlight(w io.Writer, line []byte, final bool) error {
	return f(w, line, final)
}

// Plain writes the line without decoration.
var Plain Highlighter = Func(func(w io.Writer, line []byte, _ bool) error {
	_, err := w.Write(line)
	return err
})

// Names lists the highlighters that can be selected by name.
var Names = []string{"plain", "words", "theme", "lua"}

// IsKnown reports whether name is a selectable highlighter.
func IsKnown(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}
