package renderer

import "testing"

func TestStripEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"\x1b[1;38;5;200mx", "x"},
		{"\x1b]0;title\x07$ ", "$ "},
		{"\x1b]0;title\x1b\\$ ", "$ "},
		{"a\x1b=b", "ab"},
		{"trailing\x1b", "trailing"},
		{"\x1b[12;", ""},
	}

	for _, tt := range tests {
		if got := StripEscapes(tt.in); got != tt.want {
			t.Errorf("StripEscapes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMeasureWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"ledit$ ", 7},
		{"\x1b[32mledit\x1b[0m$ ", 7},
		{"λ> ", 3},
		{"日本> ", 6},
	}

	for _, tt := range tests {
		if got := MeasureWidth(tt.in); got != tt.want {
			t.Errorf("MeasureWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
