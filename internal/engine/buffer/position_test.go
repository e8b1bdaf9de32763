package buffer

import "testing"

func TestIsWordBoundary(t *testing.T) {
	for _, c := range []byte{' ', '_', '-'} {
		if !IsWordBoundary(c) {
			t.Errorf("%q should be a word boundary", c)
		}
	}
	for _, c := range []byte{'a', '.', '/', '\t', 0} {
		if IsWordBoundary(c) {
			t.Errorf("%q should not be a word boundary", c)
		}
	}
}

func TestMoveLeftRight(t *testing.T) {
	b := NewBuffer(WithText("ab"))

	if b.MoveRight() {
		t.Error("MoveRight at end should not move")
	}
	if !b.MoveLeft() || b.Cursor() != 1 {
		t.Errorf("MoveLeft: cursor %d, want 1", b.Cursor())
	}
	b.MoveLeft()
	if b.MoveLeft() {
		t.Error("MoveLeft at start should not move")
	}
	if !b.MoveRight() || b.Cursor() != 1 {
		t.Errorf("MoveRight: cursor %d, want 1", b.Cursor())
	}
}

func TestMoveHomeEnd(t *testing.T) {
	b := NewBuffer(WithText("hello"))

	if !b.MoveHome() || b.Cursor() != 0 {
		t.Errorf("MoveHome: cursor %d, want 0", b.Cursor())
	}
	if b.MoveHome() {
		t.Error("MoveHome at start should report no movement")
	}
	if !b.MoveEnd() || b.Cursor() != 5 {
		t.Errorf("MoveEnd: cursor %d, want 5", b.Cursor())
	}
}

func TestMoveWordRight(t *testing.T) {
	b := NewBuffer(WithText("foo bar"))
	b.SetCursor(0)

	b.MoveWordRight()
	if b.Cursor() != 3 {
		t.Errorf("first MoveWordRight: cursor %d, want 3", b.Cursor())
	}
	b.MoveWordRight()
	if b.Cursor() != 7 {
		t.Errorf("second MoveWordRight: cursor %d, want 7", b.Cursor())
	}
	if b.MoveWordRight() {
		t.Error("MoveWordRight at end should not move")
	}
}

func TestMoveWordLeft(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start int
		want  []int
	}{
		{"spaces", "foo bar baz", 11, []int{7, 3, 0}},
		{"underscore and hyphen", "a_b-c", 5, []int{3, 1, 0}},
		{"no boundaries", "abc", 2, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(WithText(tt.text))
			b.SetCursor(tt.start)
			for i, want := range tt.want {
				b.MoveWordLeft()
				if b.Cursor() != want {
					t.Fatalf("step %d: cursor %d, want %d", i, b.Cursor(), want)
				}
			}
		})
	}
}

func TestMoveWordFromBoundary(t *testing.T) {
	b := NewBuffer(WithText("a  b"))
	b.SetCursor(1)

	// On a boundary already: one step is taken before re-checking.
	b.MoveWordRight()
	if b.Cursor() != 2 {
		t.Errorf("cursor %d, want 2", b.Cursor())
	}
}

func TestSetCursorClamps(t *testing.T) {
	b := NewBuffer(WithText("abc"))

	b.SetCursor(-3)
	if b.Cursor() != 0 {
		t.Errorf("cursor %d, want 0", b.Cursor())
	}
	b.SetCursor(99)
	if b.Cursor() != 3 {
		t.Errorf("cursor %d, want 3", b.Cursor())
	}
}
