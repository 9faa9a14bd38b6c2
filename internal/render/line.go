package render

import (
	"strings"

	"github.com/TimelordUK/viewlog/internal/term"
	"github.com/TimelordUK/viewlog/pkg/logformat"
)

// LineRenderer writes completed logical lines, wrapping them at the terminal
// width and aligning continuation rows under the content rather than under the
// timestamp prefix.
type LineRenderer struct {
	screen     *Screen
	clock      logformat.Clock
	timestamps bool
}

// NewLineRenderer creates a line renderer
func NewLineRenderer(screen *Screen, clock logformat.Clock, timestamps bool) *LineRenderer {
	return &LineRenderer{
		screen:     screen,
		clock:      clock,
		timestamps: timestamps,
	}
}

// Timestamps reports whether lines get a time prefix
func (r *LineRenderer) Timestamps() bool {
	return r.timestamps
}

// Render writes one logical line followed by a newline. The line is not
// retained. Escape spans are written whole and take no columns. A character
// wider than the terminal is still written after wrapping once; nothing is
// dropped.
func (r *LineRenderer) Render(line []rune) {
	s := r.screen

	indent := 0
	if r.timestamps {
		prefix := logformat.FormatPrefix(r.clock.Now())
		indent = StringWidth(prefix)
		s.Control(term.Dim)
		s.Print(prefix, indent)
		s.Control(term.ResetStyle)
	}
	continuation := strings.Repeat(" ", indent)

	for _, tok := range Tokenize(line) {
		if tok.Kind == TokenEscape {
			s.Control(tok.Span)
			continue
		}
		w := RuneWidth(tok.Rune)
		if !s.cursor.Fits(w) {
			s.Newline()
			s.Print(continuation, indent)
		}
		s.Print(string(tok.Rune), w)
	}
	s.Newline()
}
