package renderer

import "strconv"

// Control sequences written by the renderer.
const (
	SeqReset      = "\x1b[0m"
	SeqColumnZero = "\x1b[0G"
	SeqClearLine  = "\x1b[2K"
	SeqFinish     = SeqReset + "\n"
)

// appendColumn appends ESC[<col>G, moving the cursor to 1-based column col.
func appendColumn(b []byte, col int) []byte {
	b = append(b, "\x1b["...)
	b = strconv.AppendInt(b, int64(col), 10)
	return append(b, 'G')
}
