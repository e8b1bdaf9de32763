package key

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeTable(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Command
	}{
		{"line feed", "\n", Submit},
		{"carriage return", "\r", Submit},
		{"return with trailing bytes", "\rabc", Submit},
		{"backspace", "\x7f", Backspace},
		{"ctrl+a", "\x01", Home},
		{"ctrl+e", "\x05", End},
		{"up", "\x1b[A", HistoryPrev},
		{"down", "\x1b[B", HistoryNext},
		{"right", "\x1b[C", CursorRight},
		{"left", "\x1b[D", CursorLeft},
		{"home", "\x1b[1~", Home},
		{"ctrl+right", "\x1b[1;5C", WordRight},
		{"ctrl+left", "\x1b[1;5D", WordLeft},
		{"delete", "\x1b[3~", DeleteForward},
		{"delete without tilde", "\x1b[3", DeleteForward},
		{"end", "\x1b[4~", End},
		{"unmapped csi", "\x1b[9~", Unmapped},
		{"page up", "\x1b[5~", Unmapped},
		{"ss3 arrow", "\x1bOA", Unmapped},
		{"alt+x", "\x1bx", Unmapped},
		{"lone escape", "\x1b", Unmapped},
		{"ctrl+shift+up", "\x1b[1;6A", Unmapped},
		{"param other", "\x1b[1x", Unmapped},
		{"letter", "a", Insert},
		{"burst", "hello world", Insert},
		{"tab", "\t", Insert},
		{"high byte", "\xc3\xa9", Insert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			ev := d.Decode([]byte(tt.input))
			if ev.Command != tt.want {
				t.Errorf("Decode(%q) = %v, want %v", tt.input, ev.Command, tt.want)
			}
			if d.Pending() {
				t.Errorf("Decode(%q) left pending bytes %q", tt.input, d.PendingBytes())
			}
		})
	}
}

func TestDecodeInsertPayload(t *testing.T) {
	d := NewDecoder()
	chunk := []byte("pasted text")
	ev := d.Decode(chunk)

	if ev.Command != Insert {
		t.Fatalf("got %v, want Insert", ev.Command)
	}
	if diff := cmp.Diff([]byte("pasted text"), ev.Text); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}

	// The payload must not alias the read buffer.
	chunk[0] = 'X'
	if ev.Text[0] != 'p' {
		t.Error("Insert payload aliases the input chunk")
	}
}

func TestDecodeEmptyChunk(t *testing.T) {
	d := NewDecoder()
	if ev := d.Decode(nil); ev.Command != None {
		t.Errorf("empty chunk decoded as %v", ev.Command)
	}
}

func TestDecodeModifiers(t *testing.T) {
	tests := []struct {
		input string
		cmd   Command
		mods  Modifier
	}{
		{"\x1b[1;5C", WordRight, ModCtrl},
		{"\x1b[1;3D", WordLeft, ModAlt},
		{"\x1b[1;2C", WordRight, ModShift},
		{"\x1b[1;7D", WordLeft, ModCtrl | ModAlt},
	}

	for _, tt := range tests {
		ev := NewDecoder().Decode([]byte(tt.input))
		if ev.Command != tt.cmd || ev.Modifiers != tt.mods {
			t.Errorf("Decode(%q) = %v %v, want %v %v", tt.input, ev.Command, ev.Modifiers, tt.cmd, tt.mods)
		}
	}
}

func TestDecodeSplitSequences(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   []Command
	}{
		{"csi split after bracket", []string{"\x1b[", "A"}, []Command{None, HistoryPrev}},
		{"home split", []string{"\x1b[1", "~"}, []Command{None, Home}},
		{"ctrl arrow split three ways", []string{"\x1b[1", ";", "5C"}, []Command{None, None, WordRight}},
		{"ctrl arrow split before final", []string{"\x1b[1;5", "D"}, []Command{None, WordLeft}},
		{"prefix then text", []string{"\x1b[", "x", "y"}, []Command{None, Unmapped, Insert}},
		{"lone escape is not held", []string{"\x1b", "[A"}, []Command{Unmapped, Insert}},
		{"return after prefix submits", []string{"\x1b[", "\r"}, []Command{None, Submit}},
		{"newline after partial modifier submits", []string{"\x1b[1;", "\n"}, []Command{None, Submit}},
		{"backspace after prefix", []string{"\x1b[1", "\x7f"}, []Command{None, Backspace}},
		{"ctrl-a after prefix", []string{"\x1b[", "\x01"}, []Command{None, Home}},
		{"new sequence replaces prefix", []string{"\x1b[", "\x1b[D"}, []Command{None, CursorLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			var got []Command
			for _, c := range tt.chunks {
				got = append(got, d.Decode([]byte(c)).Command)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeSplitRawIncludesPending(t *testing.T) {
	d := NewDecoder()
	d.Decode([]byte("\x1b["))
	if !d.Pending() {
		t.Fatal("expected a held prefix")
	}

	ev := d.Decode([]byte("C"))
	if string(ev.Raw) != "\x1b[C" {
		t.Errorf("Raw = %q, want %q", ev.Raw, "\x1b[C")
	}
}

func TestDecodeControlDropsPending(t *testing.T) {
	d := NewDecoder()
	d.Decode([]byte("\x1b[1"))

	ev := d.Decode([]byte("\r"))
	if ev.Command != Submit {
		t.Errorf("got %v, want Submit", ev.Command)
	}
	if string(ev.Raw) != "\r" {
		t.Errorf("Raw = %q, want %q", ev.Raw, "\r")
	}
	if d.Pending() {
		t.Error("prefix should be dropped")
	}
}

func TestDecoderReset(t *testing.T) {
	d := NewDecoder()
	d.Decode([]byte("\x1b[1;"))
	d.Reset()

	if d.Pending() {
		t.Fatal("Reset should drop pending bytes")
	}
	if ev := d.Decode([]byte("C")); ev.Command != Insert {
		t.Errorf("after Reset got %v, want Insert", ev.Command)
	}
}

func TestEventString(t *testing.T) {
	ev := NewDecoder().Decode([]byte("\x1b[1;5C"))
	if got := ev.String(); got != "WordRight[Ctrl]" {
		t.Errorf("String() = %q", got)
	}

	ins := NewInsertEvent([]byte("ab"))
	if got := ins.String(); got != `Insert("ab")` {
		t.Errorf("String() = %q", got)
	}
}
