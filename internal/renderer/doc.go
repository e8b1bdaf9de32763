// Package renderer draws the editing line.
//
// Every full redraw is one frame, assembled in memory and written with a
// single Write:
//
//	ESC[0m ESC[0G ESC[2K <prompt> <highlighted line> ESC[<col>G
//
// where col is promptWidth + cursor + 1. Pure cursor motion writes only the
// ESC[<col>G sequence. After the line is submitted, Finish writes ESC[0m
// and a newline.
//
// The prompt width is the number of terminal columns the prompt occupies.
// When the caller does not know it, MeasureWidth computes it, skipping
// escape sequences and counting wide graphemes as two columns.
package renderer
