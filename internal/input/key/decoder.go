package key

// maxPending bounds how many bytes of a partial escape sequence are held.
// The longest sequence in the input table is ESC [ 1 ; m C (6 bytes), so a
// strict prefix is at most 5.
const maxPending = 5

// Decoder classifies read chunks into Events.
//
// The zero value is ready to use. A Decoder is not safe for concurrent use.
type Decoder struct {
	pending []byte
}

// NewDecoder creates a decoder with no pending input.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Pending reports whether a partial escape sequence is being held.
func (d *Decoder) Pending() bool {
	return len(d.pending) > 0
}

// PendingBytes returns a copy of the held partial sequence.
func (d *Decoder) PendingBytes() []byte {
	out := make([]byte, len(d.pending))
	copy(out, d.pending)
	return out
}

// Reset drops any held partial sequence.
func (d *Decoder) Reset() {
	d.pending = d.pending[:0]
}

// Decode classifies one chunk, as returned by a single read, into exactly
// one Event. The chunk is not retained; Insert payloads are copied.
//
// A held prefix is dropped when the chunk starts with a control byte, since
// no escape sequence continues with one.
func (d *Decoder) Decode(chunk []byte) Event {
	if len(chunk) > 0 && isControl(chunk[0]) {
		d.pending = d.pending[:0]
	}

	data := make([]byte, 0, len(d.pending)+len(chunk))
	data = append(data, d.pending...)
	data = append(data, chunk...)
	d.pending = d.pending[:0]

	if len(data) == 0 {
		return NewEvent(None, data)
	}

	switch data[0] {
	case ByteLineFeed, ByteReturn:
		return NewEvent(Submit, data)
	case ByteEscape:
		return d.decodeEscape(data)
	case ByteBackspace:
		return NewEvent(Backspace, data)
	case ByteCtrlA:
		return NewEvent(Home, data)
	case ByteCtrlE:
		return NewEvent(End, data)
	default:
		return NewInsertEvent(data)
	}
}

// decodeEscape handles chunks starting with ESC. Bytes following a
// recognized sequence are ignored.
func (d *Decoder) decodeEscape(data []byte) Event {
	if len(data) < 2 || data[1] != '[' {
		return NewEvent(Unmapped, data)
	}
	if len(data) < 3 {
		return d.hold(data)
	}

	switch data[2] {
	case 'A':
		return NewEvent(HistoryPrev, data)
	case 'B':
		return NewEvent(HistoryNext, data)
	case 'C':
		return NewEvent(CursorRight, data)
	case 'D':
		return NewEvent(CursorLeft, data)
	case '1':
		return d.decodeParam(data)
	case '3':
		return NewEvent(DeleteForward, data)
	case '4':
		return NewEvent(End, data)
	default:
		return NewEvent(Unmapped, data)
	}
}

// decodeParam handles ESC [ 1 ..., which is either Home (ESC [ 1 ~) or a
// modified arrow (ESC [ 1 ; m C).
func (d *Decoder) decodeParam(data []byte) Event {
	if len(data) < 4 {
		return d.hold(data)
	}

	switch data[3] {
	case '~':
		return NewEvent(Home, data)
	case ';':
		if len(data) < 6 {
			return d.hold(data)
		}
		var ev Event
		switch data[5] {
		case 'C':
			ev = NewEvent(WordRight, data)
		case 'D':
			ev = NewEvent(WordLeft, data)
		default:
			return NewEvent(Unmapped, data)
		}
		ev.Modifiers = FromXterm(data[4])
		return ev
	default:
		return NewEvent(Unmapped, data)
	}
}

// hold stores a strict prefix of a known sequence for the next Decode.
func (d *Decoder) hold(data []byte) Event {
	if len(data) > maxPending {
		return NewEvent(Unmapped, data)
	}
	d.pending = append(d.pending[:0], data...)
	return NewEvent(None, data)
}

// isControl reports whether c is a C0 control byte or DEL.
func isControl(c byte) bool {
	return c < 0x20 || c == ByteBackspace
}
