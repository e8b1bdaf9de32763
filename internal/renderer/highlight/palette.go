package highlight

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#rrggbb" hex color or a color name known to tcell
// ("red", "navy", "darkorange").
func ParseColor(spec string) (tcell.Color, error) {
	spec = strings.TrimSpace(spec)
	if strings.HasPrefix(spec, "#") {
		c, err := colorful.Hex(spec)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("parse color %q: %w", spec, err)
		}
		return fromColorful(c), nil
	}

	c := tcell.GetColor(strings.ToLower(spec))
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", spec)
	}
	return c, nil
}

// ParsePalette parses each spec with ParseColor.
func ParsePalette(specs []string) ([]tcell.Color, error) {
	colors := make([]tcell.Color, 0, len(specs))
	for _, s := range specs {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// GeneratePalette returns n visually distinct, bright colors.
func GeneratePalette(n int) []tcell.Color {
	if n <= 0 {
		return nil
	}
	generated := colorful.FastHappyPalette(n)
	colors := make([]tcell.Color, len(generated))
	for i, c := range generated {
		colors[i] = fromColorful(c)
	}
	return colors
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func tcellForeground(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c)
}
