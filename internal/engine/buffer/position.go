package buffer

// IsWordBoundary reports whether c separates words for word motion.
func IsWordBoundary(c byte) bool {
	return c == ' ' || c == '_' || c == '-'
}

// MoveLeft moves the cursor one byte left. It reports whether it moved.
func (b *Buffer) MoveLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

// MoveRight moves the cursor one byte right. It reports whether it moved.
func (b *Buffer) MoveRight() bool {
	if b.cursor >= len(b.data) {
		return false
	}
	b.cursor++
	return true
}

// MoveHome moves the cursor to the start of the line.
func (b *Buffer) MoveHome() bool {
	moved := b.cursor != 0
	b.cursor = 0
	return moved
}

// MoveEnd moves the cursor to the end of the line.
func (b *Buffer) MoveEnd() bool {
	moved := b.cursor != len(b.data)
	b.cursor = len(b.data)
	return moved
}

// MoveWordLeft moves the cursor left until it lands on a word boundary byte
// or reaches the start of the line.
func (b *Buffer) MoveWordLeft() bool {
	return b.moveWord(-1)
}

// MoveWordRight moves the cursor right until it lands on a word boundary
// byte or reaches the end of the line.
func (b *Buffer) MoveWordRight() bool {
	return b.moveWord(1)
}

// SetCursor places the cursor at pos, clamped to the line.
func (b *Buffer) SetCursor(pos int) {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(b.data):
		pos = len(b.data)
	}
	b.cursor = pos
}

// moveWord steps at least once before testing for a boundary, so repeated
// calls walk from one boundary to the next.
func (b *Buffer) moveWord(dir int) bool {
	pos := b.cursor
	limit := 0
	if dir > 0 {
		limit = len(b.data)
	}
	for (dir > 0 && pos < limit) || (dir < 0 && pos > limit) {
		pos += dir
		if pos < len(b.data) && IsWordBoundary(b.data[pos]) {
			break
		}
	}
	moved := pos != b.cursor
	b.cursor = pos
	return moved
}
