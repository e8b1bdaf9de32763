package highlight

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Reset is the SGR sequence restoring default attributes.
const Reset = "\x1b[0m"

// SGR returns the escape sequence selecting style. The sequence always
// starts from a reset, so styles never accumulate.
//
// RGB colors are written as 24-bit colors when trueColor is set and
// approximated on the 256-color cube otherwise.
func SGR(style tcell.Style, trueColor bool) string {
	fg, bg, attrs := style.Decompose()

	params := []string{"0"}
	for _, a := range sgrAttrs {
		if attrs&a.mask != 0 {
			params = append(params, a.code)
		}
	}
	params = appendColor(params, fg, 30, trueColor)
	params = appendColor(params, bg, 40, trueColor)

	if len(params) == 1 {
		return Reset
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

var sgrAttrs = []struct {
	mask tcell.AttrMask
	code string
}{
	{tcell.AttrBold, "1"},
	{tcell.AttrDim, "2"},
	{tcell.AttrItalic, "3"},
	{tcell.AttrUnderline, "4"},
	{tcell.AttrBlink, "5"},
	{tcell.AttrReverse, "7"},
	{tcell.AttrStrikeThrough, "9"},
}

// appendColor appends the parameters for c. base is 30 for foreground and
// 40 for background.
func appendColor(params []string, c tcell.Color, base int, trueColor bool) []string {
	if c == tcell.ColorDefault || !c.Valid() {
		return params
	}

	if c.IsRGB() {
		r, g, b := c.RGB()
		if trueColor {
			return append(params, strconv.Itoa(base+8), "2",
				strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b)))
		}
		return append(params, strconv.Itoa(base+8), "5", strconv.Itoa(cubeIndex(r, g, b)))
	}

	idx := int(c - tcell.ColorValid)
	switch {
	case idx < 8:
		return append(params, strconv.Itoa(base+idx))
	case idx < 16:
		return append(params, strconv.Itoa(base+60+idx-8))
	default:
		return append(params, strconv.Itoa(base+8), "5", strconv.Itoa(idx))
	}
}

// cubeIndex maps an RGB color onto the xterm 6x6x6 color cube.
func cubeIndex(r, g, b int32) int {
	q := func(v int32) int {
		return int((v*5 + 127) / 255)
	}
	return 16 + 36*q(r) + 6*q(g) + q(b)
}
