package highlight

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Theme maps token types to styles.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Default styles tokens without an entry in TokenStyles.
	Default tcell.Style

	// Committed, when set, replaces all token styles on the final redraw.
	Committed *tcell.Style

	// TokenStyles maps token types to their styles.
	TokenStyles map[TokenType]tcell.Style
}

// DefaultTheme returns a theme for dark terminals using the 16 base colors.
func DefaultTheme() *Theme {
	return &Theme{
		Name:    "default",
		Default: tcell.StyleDefault,
		TokenStyles: map[TokenType]tcell.Style{
			TokenCommand:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
			TokenFlag:     tcell.StyleDefault.Foreground(tcell.ColorTeal),
			TokenNumber:   tcell.StyleDefault.Foreground(tcell.ColorPurple),
			TokenString:   tcell.StyleDefault.Foreground(tcell.ColorOlive),
			TokenOperator: tcell.StyleDefault.Foreground(tcell.ColorYellow),
			TokenInvalid:  tcell.StyleDefault.Foreground(tcell.ColorRed).Underline(true),
		},
	}
}

// StyleForToken returns the style for a token type.
func (t *Theme) StyleForToken(tokenType TokenType) tcell.Style {
	if style, ok := t.TokenStyles[tokenType]; ok {
		return style
	}
	return t.Default
}

// SetColors overrides the foreground of token types by name, for example
// {"command": "#50fa7b", "flag": "teal"}.
func (t *Theme) SetColors(colors map[string]string) error {
	if t.TokenStyles == nil {
		t.TokenStyles = make(map[TokenType]tcell.Style)
	}
	for name, spec := range colors {
		tt := TokenTypeFromString(name)
		if tt == TokenNone {
			return fmt.Errorf("unknown token type %q", name)
		}
		c, err := ParseColor(spec)
		if err != nil {
			return err
		}
		t.TokenStyles[tt] = t.StyleForToken(tt).Foreground(c)
	}
	return nil
}

// Themed highlights tokens with styles from a Theme.
type Themed struct {
	theme     *Theme
	trueColor bool
}

// NewThemed creates a highlighter for theme. A nil theme uses DefaultTheme.
func NewThemed(theme *Theme, trueColor bool) *Themed {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Themed{theme: theme, trueColor: trueColor}
}

// Theme returns the active theme.
func (h *Themed) Theme() *Theme {
	return h.theme
}

// Highlight implements Highlighter.
func (h *Themed) Highlight(w io.Writer, line []byte, final bool) error {
	if final && h.theme.Committed != nil {
		if _, err := io.WriteString(w, SGR(*h.theme.Committed, h.trueColor)); err != nil {
			return err
		}
		_, err := w.Write(line)
		return err
	}

	current := ""
	for _, tok := range Tokenize(line) {
		seq := SGR(h.theme.StyleForToken(tok.Type), h.trueColor)
		if seq != current {
			if _, err := io.WriteString(w, seq); err != nil {
				return err
			}
			current = seq
		}
		if _, err := w.Write(line[tok.Start:tok.End]); err != nil {
			return err
		}
	}
	return nil
}
