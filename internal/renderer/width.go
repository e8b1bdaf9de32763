package renderer

import "github.com/rivo/uniseg"

// MeasureWidth returns the number of columns s occupies on a terminal.
// CSI and OSC escape sequences take no space.
func MeasureWidth(s string) int {
	return uniseg.StringWidth(StripEscapes(s))
}

// StripEscapes removes CSI (ESC [ ... final) and OSC (ESC ] ... BEL or
// ESC \) sequences, and any other two-byte escape, from s.
func StripEscapes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != 0x1b {
			out = append(out, s[i])
			continue
		}
		if i+1 >= len(s) {
			break
		}
		switch s[i+1] {
		case '[':
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
		case ']':
			i += 2
			for i < len(s) {
				if s[i] == 0x07 {
					break
				}
				if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
					i++
					break
				}
				i++
			}
		default:
			i++
		}
	}
	return string(out)
}
