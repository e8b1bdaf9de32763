// Package buffer provides the single-line edit buffer used by the line editor.
//
// A Buffer owns the bytes of the line being edited and a cursor offset into
// them. The cursor always satisfies 0 <= cursor <= Len(). Content is treated
// as raw bytes; no Unicode segmentation is performed, so a multi-byte
// character occupies several cursor positions.
//
// Basic usage:
//
//	buf := buffer.NewBuffer()
//	_ = buf.Insert([]byte("hi"))  // "hi", cursor 2
//	buf.MoveLeft()                // cursor 1
//	buf.Backspace()               // "i", cursor 0
//
// Capacity:
//
// Every buffer has a maximum length (DefaultMaxLength unless configured with
// WithMaxLength). An insert that would grow the line past that limit is
// rejected as a whole and returns ErrLineTooLong; the buffer is left
// unchanged.
//
// Word motion:
//
// MoveWordLeft and MoveWordRight scan toward the line edge and stop ON the
// first word boundary byte (space, underscore or hyphen) they meet, always
// taking at least one step first.
package buffer
