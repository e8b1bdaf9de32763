// Package highlight provides highlighters for the line editor.
//
// A Highlighter writes the display form of the line to the renderer's
// frame. It receives a copy of the line and must not change terminal
// modes; it may emit SGR color sequences. The renderer resets attributes
// at the start of every frame, so a highlighter does not need to restore
// the colors it sets.
//
// Available highlighters:
//
//   - Plain writes the line unchanged.
//   - Words cycles a color at every space, optionally through a palette.
//   - Themed tokenizes the line shell-style and styles tokens from a Theme.
//   - Lua delegates to a script function highlight(line, final).
package highlight
