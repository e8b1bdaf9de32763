package buffer

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", b.Cursor())
	}
	if b.MaxLength() != DefaultMaxLength {
		t.Errorf("expected max length %d, got %d", DefaultMaxLength, b.MaxLength())
	}
}

func TestNewBufferWithText(t *testing.T) {
	b := NewBuffer(WithText("hello"))

	if b.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", b.String())
	}
	if b.Cursor() != 5 {
		t.Errorf("expected cursor 5, got %d", b.Cursor())
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     int
		insert     string
		wantText   string
		wantCursor int
	}{
		{"into empty", "", 0, "abc", "abc", 3},
		{"at end", "ab", 2, "c", "abc", 3},
		{"at start", "bc", 0, "a", "abc", 1},
		{"in middle", "ac", 1, "b", "abc", 2},
		{"burst in middle", "held", 2, "llo wor", "hello world", 9},
		{"empty insert", "abc", 1, "", "abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(WithText(tt.text))
			b.SetCursor(tt.cursor)

			if err := b.Insert([]byte(tt.insert)); err != nil {
				t.Fatalf("Insert failed: %v", err)
			}
			if b.String() != tt.wantText {
				t.Errorf("got %q, want %q", b.String(), tt.wantText)
			}
			if b.Cursor() != tt.wantCursor {
				t.Errorf("cursor at %d, want %d", b.Cursor(), tt.wantCursor)
			}
		})
	}
}

func TestInsertLineTooLong(t *testing.T) {
	b := NewBuffer(WithMaxLength(5), WithText("abc"))
	b.SetCursor(1)

	err := b.Insert([]byte("xyz"))
	if !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}

	var tooLong *LineTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("expected *LineTooLongError, got %T", err)
	}
	if tooLong.Len != 3 || tooLong.Insert != 3 || tooLong.Max != 5 {
		t.Errorf("unexpected error detail: %+v", tooLong)
	}

	if b.String() != "abc" || b.Cursor() != 1 {
		t.Errorf("rejected insert modified buffer: %q cursor %d", b.String(), b.Cursor())
	}

	// Filling exactly to the limit is allowed.
	if err := b.Insert([]byte("xy")); err != nil {
		t.Fatalf("Insert to limit failed: %v", err)
	}
	if b.String() != "axybc" {
		t.Errorf("got %q, want %q", b.String(), "axybc")
	}
	if b.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", b.Remaining())
	}
}

func TestBackspace(t *testing.T) {
	b := NewBuffer(WithText("abc"))

	if !b.Backspace() {
		t.Fatal("Backspace at end should remove a byte")
	}
	if b.String() != "ab" || b.Cursor() != 2 {
		t.Errorf("got %q cursor %d, want \"ab\" cursor 2", b.String(), b.Cursor())
	}

	b.SetCursor(1)
	b.Backspace()
	if b.String() != "b" || b.Cursor() != 0 {
		t.Errorf("got %q cursor %d, want \"b\" cursor 0", b.String(), b.Cursor())
	}

	if b.Backspace() {
		t.Error("Backspace at start should be a no-op")
	}
	if b.String() != "b" {
		t.Errorf("no-op Backspace changed content to %q", b.String())
	}

	empty := NewBuffer()
	if empty.Backspace() {
		t.Error("Backspace on empty buffer should be a no-op")
	}
}

func TestDeleteForward(t *testing.T) {
	b := NewBuffer(WithText("abc"))
	b.SetCursor(1)

	if !b.DeleteForward() {
		t.Fatal("DeleteForward in middle should remove a byte")
	}
	if b.String() != "ac" || b.Cursor() != 1 {
		t.Errorf("got %q cursor %d, want \"ac\" cursor 1", b.String(), b.Cursor())
	}
}

func TestDeleteForwardAtEnd(t *testing.T) {
	b := NewBuffer(WithText("abc"))

	if b.DeleteForward() {
		t.Error("DeleteForward at end should be a no-op")
	}
	if b.String() != "abc" || b.Cursor() != 3 {
		t.Errorf("got %q cursor %d, want unchanged", b.String(), b.Cursor())
	}
}

func TestReplaceAndClear(t *testing.T) {
	b := NewBuffer(WithMaxLength(4), WithText("ab"))
	b.SetCursor(0)

	b.Replace([]byte("hello"))
	if b.String() != "hell" {
		t.Errorf("Replace should truncate to max length, got %q", b.String())
	}
	if b.Cursor() != 4 {
		t.Errorf("Replace should move cursor to end, got %d", b.Cursor())
	}

	b.Clear()
	if !b.IsEmpty() || b.Cursor() != 0 {
		t.Errorf("Clear left %q cursor %d", b.String(), b.Cursor())
	}
}

func TestTypeLeftLeftInsert(t *testing.T) {
	b := NewBuffer()
	_ = b.Insert([]byte("hi"))
	b.MoveLeft()
	b.MoveLeft()
	_ = b.Insert([]byte("x"))

	if b.String() != "xhi" {
		t.Errorf("got %q, want %q", b.String(), "xhi")
	}
	if b.Cursor() != 1 {
		t.Errorf("cursor at %d, want 1", b.Cursor())
	}
}

func TestCursorInvariantUnderRandomEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewBuffer(WithMaxLength(32))

	for i := 0; i < 5000; i++ {
		switch rng.Intn(6) {
		case 0:
			n := rng.Intn(5)
			_ = b.Insert([]byte(strings.Repeat("a", n)))
		case 1:
			b.Backspace()
		case 2:
			b.DeleteForward()
		case 3:
			b.MoveLeft()
		case 4:
			b.MoveRight()
		case 5:
			b.SetCursor(rng.Intn(40) - 4)
		}

		if b.Cursor() < 0 || b.Cursor() > b.Len() {
			t.Fatalf("step %d: cursor %d outside [0,%d]", i, b.Cursor(), b.Len())
		}
		if b.Len() > b.MaxLength() {
			t.Fatalf("step %d: length %d exceeds max %d", i, b.Len(), b.MaxLength())
		}
	}
}
