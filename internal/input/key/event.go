package key

import "fmt"

// Event represents one decoded chunk of input.
type Event struct {
	// Command is the decoded action.
	Command Command

	// Text is the payload for Insert events. It is owned by the Event.
	Text []byte

	// Modifiers holds modifier keys reported by the escape sequence,
	// for example Ctrl on Ctrl+Right.
	Modifiers Modifier

	// Raw is the input the event was decoded from, including any bytes
	// carried over from a previous partial sequence.
	Raw []byte
}

// NewEvent creates an event for cmd decoded from raw.
func NewEvent(cmd Command, raw []byte) Event {
	return Event{
		Command: cmd,
		Raw:     raw,
	}
}

// NewInsertEvent creates an Insert event carrying text.
func NewInsertEvent(text []byte) Event {
	return Event{
		Command: Insert,
		Text:    text,
		Raw:     text,
	}
}

// IsNoOp returns true if the event never changes editor state.
func (e Event) IsNoOp() bool {
	return e.Command == None || e.Command == Unmapped
}

// String returns a representation suitable for logs.
// Examples: "Insert(\"abc\")", "WordRight[Ctrl]", "Submit"
func (e Event) String() string {
	s := e.Command.String()
	if e.Command == Insert {
		s = fmt.Sprintf("Insert(%q)", e.Text)
	}
	if !e.Modifiers.IsEmpty() {
		s += "[" + e.Modifiers.String() + "]"
	}
	return s
}
