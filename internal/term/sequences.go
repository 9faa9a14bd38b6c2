// Package term holds the terminal control sequences the viewer emits and the
// session guards that put the terminal into (and back out of) viewing mode.
package term

import "strconv"

// Control sequences written by the renderer. They are plain strings so they can
// be written through any io.Writer, including a capturing buffer in tests.
const (
	ClearScreen     = "\x1b[2J"
	ClearScrollback = "\x1b[3J"
	ClearLine       = "\x1b[K"

	ShowCursor = "\x1b[?25h"
	HideCursor = "\x1b[?25l"

	EnterAltScreen = "\x1b[?1049h"
	ExitAltScreen  = "\x1b[?1049l"

	ReverseOn  = "\x1b[7m"
	ReverseOff = "\x1b[27m"
	BoldOn     = "\x1b[1m"
	BoldOff    = "\x1b[22m"
	Dim        = "\x1b[2m"
	ResetStyle = "\x1b[0m"

	// Escape is the introducer of every control sequence.
	Escape = '\x1b'
)

// Goto returns the cursor position sequence for a 0-based row and column.
func Goto(row, col int) string {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	return "\x1b[" + strconv.Itoa(row+1) + ";" + strconv.Itoa(col+1) + "H"
}

// Clear returns the full-screen clear sequence, optionally discarding the
// scrollback buffer, followed by a move to the top-left corner.
func Clear(discardScrollback bool) string {
	s := ClearScreen
	if discardScrollback {
		s += ClearScrollback
	}
	return s + Goto(0, 0)
}
