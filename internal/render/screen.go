package render

import (
	"bufio"
	"io"

	"github.com/TimelordUK/viewlog/internal/term"
)

// Screen is the single owner of the terminal output stream. Every write goes
// through it together with the number of columns it occupies, so the Cursor
// can never drift from what was actually written.
type Screen struct {
	out    *bufio.Writer
	cursor Cursor
}

// NewScreen creates a screen writing to w for a rows x cols terminal
func NewScreen(w io.Writer, rows, cols int) *Screen {
	return &Screen{
		out:    bufio.NewWriter(w),
		cursor: NewCursor(rows, cols),
	}
}

// Cursor returns a copy of the tracked cursor
func (s *Screen) Cursor() Cursor {
	return s.cursor
}

// Print writes text occupying width columns and advances the cursor
func (s *Screen) Print(text string, width int) {
	s.out.WriteString(text)
	s.cursor.Advance(width)
}

// Control writes a zero-width control sequence
func (s *Screen) Control(seq string) {
	s.out.WriteString(seq)
}

// Newline clears the rest of the current row and moves to the next one
func (s *Screen) Newline() {
	s.out.WriteString(term.ClearLine + "\n")
	s.cursor.Newline()
}

// Goto moves the terminal cursor to an absolute 0-based position
func (s *Screen) Goto(row, col int) {
	s.out.WriteString(term.Goto(row, col))
	s.cursor.MoveTo(row, col)
}

// Save remembers the cursor position
func (s *Screen) Save() {
	s.cursor.Save()
}

// Restore returns the tracked and the terminal cursor to the saved position
func (s *Screen) Restore() {
	s.cursor.Restore()
	s.out.WriteString(term.Goto(s.cursor.Row(), s.cursor.Col()))
}

// Clear blanks the screen, optionally dropping scrollback, and homes the cursor
func (s *Screen) Clear(discardScrollback bool) {
	s.out.WriteString(term.Clear(discardScrollback))
	s.cursor.Reset()
}

// Flush sends buffered output to the terminal. Write errors are sticky and
// surface here.
func (s *Screen) Flush() error {
	return s.out.Flush()
}
