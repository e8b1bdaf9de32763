package key

import "fmt"

// Command identifies the editing action decoded from input.
type Command uint8

const (
	// None means the chunk produced no action (empty, or held as a
	// partial escape sequence).
	None Command = iota

	// Unmapped is an escape sequence that was recognized as such but has
	// no binding. It never changes editor state.
	Unmapped

	// Insert writes the Event's Text at the cursor.
	Insert

	// Submit ends the editing session.
	Submit

	// Editing
	Backspace
	DeleteForward

	// Cursor movement
	CursorLeft
	CursorRight
	Home
	End
	WordLeft
	WordRight

	// History recall
	HistoryPrev
	HistoryNext
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case None:
		return "None"
	case Unmapped:
		return "Unmapped"
	case Insert:
		return "Insert"
	case Submit:
		return "Submit"
	case Backspace:
		return "Backspace"
	case DeleteForward:
		return "DeleteForward"
	case CursorLeft:
		return "CursorLeft"
	case CursorRight:
		return "CursorRight"
	case Home:
		return "Home"
	case End:
		return "End"
	case WordLeft:
		return "WordLeft"
	case WordRight:
		return "WordRight"
	case HistoryPrev:
		return "HistoryPrev"
	case HistoryNext:
		return "HistoryNext"
	default:
		return fmt.Sprintf("Command(%d)", c)
	}
}

// IsMotion returns true if the command only moves the cursor. Motions are
// redrawn by repositioning the cursor instead of reprinting the line.
func (c Command) IsMotion() bool {
	return c >= CursorLeft && c <= WordRight
}

// IsHistory returns true if the command recalls a history entry.
func (c Command) IsHistory() bool {
	return c == HistoryPrev || c == HistoryNext
}

// IsEdit returns true if the command changes the line content.
func (c Command) IsEdit() bool {
	return c == Insert || c == Backspace || c == DeleteForward
}

// Control bytes recognized at the start of a chunk.
const (
	ByteCtrlA     byte = 0x01
	ByteCtrlE     byte = 0x05
	ByteLineFeed  byte = '\n'
	ByteReturn    byte = '\r'
	ByteEscape    byte = 0x1B
	ByteBackspace byte = 0x7F
)
