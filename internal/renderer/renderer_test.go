package renderer

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dshills/ledit/internal/logging"
	"github.com/dshills/ledit/internal/renderer/highlight"
)

// countingWriter records each Write call separately.
type countingWriter struct {
	writes []string
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func TestRedrawFrame(t *testing.T) {
	var out countingWriter
	r := New(&out, nil, nil)
	r.SetPrompt("ledit$ ", 7)

	if err := r.Redraw([]byte("hi"), 1, false); err != nil {
		t.Fatalf("Redraw failed: %v", err)
	}

	if len(out.writes) != 1 {
		t.Fatalf("Redraw made %d writes, want 1", len(out.writes))
	}
	want := "\x1b[0m\x1b[0G\x1b[2Kledit$ hi\x1b[9G"
	if out.writes[0] != want {
		t.Errorf("frame = %q, want %q", out.writes[0], want)
	}
}

func TestRedrawUsesHighlighter(t *testing.T) {
	var out bytes.Buffer
	var gotFinal []bool
	hl := highlight.Func(func(w io.Writer, line []byte, final bool) error {
		gotFinal = append(gotFinal, final)
		_, err := w.Write(bytes.ToUpper(line))
		return err
	})
	r := New(&out, hl, nil)
	r.SetPrompt("> ", 2)

	r.Redraw([]byte("ab"), 2, false)
	r.Redraw([]byte("ab"), 2, true)

	want := strings.Repeat("\x1b[0m\x1b[0G\x1b[2K> AB\x1b[5G", 2)
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if len(gotFinal) != 2 || gotFinal[0] || !gotFinal[1] {
		t.Errorf("final flags = %v", gotFinal)
	}
}

func TestRedrawHighlighterGetsCopy(t *testing.T) {
	var out bytes.Buffer
	hl := highlight.Func(func(w io.Writer, line []byte, final bool) error {
		for i := range line {
			line[i] = 'X'
		}
		return nil
	})
	r := New(&out, hl, nil)

	line := []byte("keep")
	r.Redraw(line, 0, false)
	if string(line) != "keep" {
		t.Errorf("highlighter mutated caller's line: %q", line)
	}
}

func TestRedrawHighlighterErrorIsLogged(t *testing.T) {
	var out, logs bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &logs})
	hl := highlight.Func(func(w io.Writer, line []byte, final bool) error {
		io.WriteString(w, "part")
		return errors.New("boom")
	})
	r := New(&out, hl, logger)

	if err := r.Redraw([]byte("x"), 0, false); err != nil {
		t.Fatalf("highlighter error should not fail Redraw: %v", err)
	}
	if !strings.HasSuffix(out.String(), "part\x1b[1G") {
		t.Errorf("output = %q", out.String())
	}
	if !strings.Contains(logs.String(), "boom") {
		t.Errorf("expected logged error, got %q", logs.String())
	}
}

func TestSetCursor(t *testing.T) {
	var out countingWriter
	r := New(&out, nil, nil)
	r.SetPrompt("ledit$ ", 7)

	r.SetCursor(0)
	r.SetCursor(12)

	want := []string{"\x1b[8G", "\x1b[20G"}
	if len(out.writes) != 2 || out.writes[0] != want[0] || out.writes[1] != want[1] {
		t.Errorf("writes = %q, want %q", out.writes, want)
	}
}

func TestFinish(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, nil, nil)
	if err := r.Finish(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "\x1b[0m\n" {
		t.Errorf("Finish wrote %q", out.String())
	}
}

func TestSetPromptMeasures(t *testing.T) {
	r := New(io.Discard, nil, nil)

	r.SetPrompt("\x1b[1;32mok\x1b[0m> ", 0)
	if _, w := r.Prompt(); w != 4 {
		t.Errorf("measured width = %d, want 4", w)
	}

	r.SetPrompt("anything", 3)
	if _, w := r.Prompt(); w != 3 {
		t.Errorf("explicit width = %d, want 3", w)
	}
	if got := r.Column(2); got != 6 {
		t.Errorf("Column(2) = %d, want 6", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteErrors(t *testing.T) {
	r := New(failingWriter{}, nil, nil)
	if err := r.Redraw(nil, 0, false); err == nil {
		t.Error("Redraw should return write errors")
	}
	if err := r.SetCursor(0); err == nil {
		t.Error("SetCursor should return write errors")
	}
	if err := r.Finish(); err == nil {
		t.Error("Finish should return write errors")
	}
}
