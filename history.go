package ledit

import (
	"github.com/dshills/ledit/internal/engine/history"
	"github.com/dshills/ledit/internal/renderer/highlight"
)

// History is the ordered list of accepted lines. It is safe to share
// between editors used one after another.
type History = history.Store

// NewHistory creates an empty history.
func NewHistory() *History {
	return history.NewStore()
}

// Highlighter renders the line for display. It receives a copy of the line
// and a flag that is true once, for the redraw after Enter.
type Highlighter = highlight.Highlighter

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc = highlight.Func

// PlainHighlighter writes the line unchanged.
func PlainHighlighter() Highlighter {
	return highlight.Plain
}

// WordsHighlighter colors each space-separated word, cycling through the
// basic ANSI colors.
func WordsHighlighter() Highlighter {
	return highlight.NewWords()
}
