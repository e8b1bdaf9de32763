package highlight

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Words colors space-separated words. The first color is emitted before
// the line; every space emits the next color before itself.
type Words struct {
	first string
	cycle []string
}

// NewWords returns the classic colorizer: red first, then green, yellow,
// blue, magenta, cyan and white, continuing from green after white.
func NewWords() *Words {
	w := &Words{first: sgrCode(31)}
	for code := 32; code <= 37; code++ {
		w.cycle = append(w.cycle, sgrCode(code))
	}
	return w
}

// NewPaletteWords colors word i with colors[i % len(colors)].
// An empty palette falls back to NewWords.
func NewPaletteWords(colors []tcell.Color, trueColor bool) *Words {
	if len(colors) == 0 {
		return NewWords()
	}
	seqs := make([]string, len(colors))
	for i, c := range colors {
		seqs[i] = SGR(tcellForeground(c), trueColor)
	}
	cycle := append(append([]string{}, seqs[1:]...), seqs[0])
	return &Words{first: seqs[0], cycle: cycle}
}

// Highlight implements Highlighter. final does not change the output.
func (h *Words) Highlight(w io.Writer, line []byte, _ bool) error {
	if _, err := io.WriteString(w, h.first); err != nil {
		return err
	}

	k, start := 0, 0
	for i, c := range line {
		if c != ' ' {
			continue
		}
		if _, err := w.Write(line[start:i]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, h.cycle[k%len(h.cycle)]); err != nil {
			return err
		}
		k++
		start = i
	}
	_, err := w.Write(line[start:])
	return err
}

func sgrCode(code int) string {
	return fmt.Sprintf("\x1b[%dm", code)
}
