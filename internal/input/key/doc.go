// Package key decodes raw terminal input into editing commands.
//
// This package defines the types that sit between the terminal and the line
// buffer:
//
//   - Command: the editing action a chunk of input maps to
//   - Modifier: modifier keys reported inside an escape sequence
//   - Event: one decoded Command with its payload
//   - Decoder: turns read chunks into Events
//
// # Input Table
//
// Each chunk returned by a single read is classified by its leading bytes:
//
//	'\n' or '\r'         Submit
//	0x7F                 Backspace
//	0x01 (Ctrl+A)        Home
//	0x05 (Ctrl+E)        End
//	ESC [ A / B / C / D  HistoryPrev / HistoryNext / CursorRight / CursorLeft
//	ESC [ 1 ~            Home
//	ESC [ 1 ; m C / D    WordRight / WordLeft (m is the modifier byte)
//	ESC [ 3              DeleteForward
//	ESC [ 4              End
//	any other ESC ...    Unmapped (ignored)
//	anything else        Insert, with the whole chunk as payload
//
// # Partial Sequences
//
// Terminals normally deliver a whole escape sequence per read, but under
// load a sequence can be split. A chunk that is a strict prefix of a known
// multi-byte sequence (ESC [, ESC [ 1, ESC [ 1 ;, ESC [ 1 ; m) is held by the
// Decoder and joined with the next chunk. A lone ESC is never held: it is
// the Escape key and is ignored immediately.
package key
