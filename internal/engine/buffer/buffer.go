package buffer

import "errors"

// DefaultMaxLength is the default maximum line length in bytes.
const DefaultMaxLength = 255

// Errors returned by buffer operations.
var (
	// ErrLineTooLong is returned when an insert would exceed the maximum
	// line length. The buffer is not modified.
	ErrLineTooLong = errors.New("line too long")
)

// Buffer holds one editable line and its cursor.
// Buffer is not safe for concurrent use; the editor drives it from a single
// goroutine.
type Buffer struct {
	data   []byte
	cursor int
	maxLen int
	seed   string
}

// NewBuffer creates an empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{maxLen: DefaultMaxLength}
	for _, opt := range opts {
		opt(b)
	}
	b.data = make([]byte, 0, b.maxLen)
	if b.seed != "" {
		b.Replace([]byte(b.seed))
		b.seed = ""
	}
	return b
}

// Len returns the number of bytes in the line.
func (b *Buffer) Len() int {
	return len(b.data)
}

// IsEmpty reports whether the line has no content.
func (b *Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// Cursor returns the cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// MaxLength returns the maximum line length in bytes.
func (b *Buffer) MaxLength() int {
	return b.maxLen
}

// Bytes returns the line content. The returned slice aliases the buffer and
// is only valid until the next mutation.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns a copy of the line content.
func (b *Buffer) String() string {
	return string(b.data)
}

// Remaining returns how many more bytes fit before the maximum length.
func (b *Buffer) Remaining() int {
	return b.maxLen - len(b.data)
}
