package buffer

import "fmt"

// LineTooLongError describes a rejected insert.
type LineTooLongError struct {
	// Len is the line length at the time of the insert.
	Len int
	// Insert is the number of bytes that were offered.
	Insert int
	// Max is the maximum line length.
	Max int
}

// Error implements the error interface.
func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("line too long: %d+%d bytes exceeds %d", e.Len, e.Insert, e.Max)
}

// Is implements error matching for LineTooLongError.
func (e *LineTooLongError) Is(target error) bool {
	return target == ErrLineTooLong
}

// Insert writes p at the cursor, shifting the tail right, and advances the
// cursor past the inserted bytes. An empty p is a no-op. If the result would
// exceed the maximum length nothing is written and an error matching
// ErrLineTooLong is returned.
func (b *Buffer) Insert(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if len(b.data)+len(p) > b.maxLen {
		return &LineTooLongError{Len: len(b.data), Insert: len(p), Max: b.maxLen}
	}

	n := len(b.data)
	b.data = append(b.data, p...)
	copy(b.data[b.cursor+len(p):], b.data[b.cursor:n])
	copy(b.data[b.cursor:], p)
	b.cursor += len(p)
	return nil
}

// Backspace removes the byte before the cursor and moves the cursor left.
// It reports whether anything was removed.
func (b *Buffer) Backspace() bool {
	if b.cursor == 0 || len(b.data) == 0 {
		return false
	}
	b.cursor--
	b.data = append(b.data[:b.cursor], b.data[b.cursor+1:]...)
	return true
}

// DeleteForward removes the byte under the cursor. The cursor does not move.
// It reports whether anything was removed.
func (b *Buffer) DeleteForward() bool {
	if b.cursor >= len(b.data) {
		return false
	}
	b.data = append(b.data[:b.cursor], b.data[b.cursor+1:]...)
	return true
}

// Replace overwrites the whole line with p and moves the cursor to the end.
// Content longer than the maximum length is truncated.
func (b *Buffer) Replace(p []byte) {
	if len(p) > b.maxLen {
		p = p[:b.maxLen]
	}
	b.data = append(b.data[:0], p...)
	b.cursor = len(b.data)
}

// Clear empties the line and resets the cursor.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
	b.cursor = 0
}
