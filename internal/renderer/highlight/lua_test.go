package highlight

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pluginlua "github.com/dshills/ledit/internal/plugin/lua"
)

const testScript = `
function highlight(line, final)
	if final then
		return sgr.reset() .. line
	end
	if line == "" then
		return nil
	end
	return sgr.code(33) .. line
end

function colored(line, final)
	return sgr.color("maroon") .. line
end

function bad(line, final)
	return 12
end
`

func TestLuaHighlighter(t *testing.T) {
	h, err := NewLuaString(testScript, "", false)
	if err != nil {
		t.Fatalf("NewLuaString failed: %v", err)
	}
	defer h.Close()

	tests := []struct {
		line  string
		final bool
		want  string
	}{
		{"abc", false, "\x1b[33mabc"},
		{"abc", true, "\x1b[0mabc"},
		{"", false, ""},
	}
	for _, tt := range tests {
		if got := render(t, h, tt.line, tt.final); got != tt.want {
			t.Errorf("Highlight(%q, %v) = %q, want %q", tt.line, tt.final, got, tt.want)
		}
	}
}

func TestLuaColorHelper(t *testing.T) {
	h, err := NewLuaString(testScript, "colored", false)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if got := render(t, h, "x", false); got != "\x1b[0;31mx" {
		t.Errorf("got %q", got)
	}
}

func TestLuaBadReturn(t *testing.T) {
	h, err := NewLuaString(testScript, "bad", false)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	var sb strings.Builder
	if err := h.Highlight(&sb, []byte("x"), false); err == nil {
		t.Error("non-string return should be an error")
	}
}

func TestLuaMissingFunction(t *testing.T) {
	_, err := NewLuaString(`x = 1`, "", false)
	if !errors.Is(err, pluginlua.ErrNotFunction) {
		t.Errorf("err = %v, want ErrNotFunction", err)
	}
}

func TestLuaFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hl.lua")
	if err := os.WriteFile(path, []byte(testScript), 0o644); err != nil {
		t.Fatal(err)
	}

	h, err := NewLua(path, "", false)
	if err != nil {
		t.Fatalf("NewLua failed: %v", err)
	}
	defer h.Close()
	if got := render(t, h, "a", false); got != "\x1b[33ma" {
		t.Errorf("got %q", got)
	}

	if _, err := NewLua(filepath.Join(t.TempDir(), "missing.lua"), "", false); err == nil {
		t.Error("missing script should fail")
	}
}
