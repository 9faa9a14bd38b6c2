package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/TimelordUK/viewlog/internal/term"
	"github.com/TimelordUK/viewlog/pkg/logformat"
)

// Labels for the status bar clock
const (
	LabelStarted = "Started"
	LabelCreated = "Created"
)

// Status is everything the status bar shows. It is derived from the viewer's
// state on each redraw and never stored.
type Status struct {
	Name      string
	Label     string
	Since     time.Time
	Truncated bool
}

// Clock returns the right-aligned "<label> at HH:MM:SS" text
func (st Status) Clock() string {
	return fmt.Sprintf("%s at %s", st.Label, logformat.FormatTime(st.Since))
}

// HeaderRenderer draws the status bar on the reserved last row
type HeaderRenderer struct {
	screen *Screen
}

// NewHeaderRenderer creates a header renderer
func NewHeaderRenderer(screen *Screen) *HeaderRenderer {
	return &HeaderRenderer{screen: screen}
}

// Render redraws the status bar and puts the cursor back where the scrolling
// content left it.
func (h *HeaderRenderer) Render(st Status) {
	s := h.screen
	row := s.cursor.LastRow()
	cols := s.cursor.Cols()

	s.Save()
	s.Control(term.ReverseOn)

	s.Goto(row, 0)
	s.Print(strings.Repeat(" ", cols), cols)

	const (
		viewing = "Viewing "
		note    = "   File truncated"
	)
	// Text starts at column 1 and leaves the final column free.
	room := cols - 2 - len(viewing)
	if st.Truncated {
		room -= len(note)
	}
	name := fitWidth(st.Name, room)

	s.Goto(row, 1)
	s.Print(viewing, len(viewing))
	s.Control(term.BoldOn)
	s.Print(name, StringWidth(name))
	s.Control(term.BoldOff)

	if st.Truncated {
		s.Print(note, len(note))
	}

	clock := st.Clock()
	width := StringWidth(clock)
	col := cols - width - 1
	if col < 0 {
		col = 0
	}
	s.Goto(row, col)
	s.Print(clock, width)

	s.Control(term.ReverseOff)
	s.Restore()
}

// fitWidth cuts s to at most limit columns
func fitWidth(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if StringWidth(s) <= limit {
		return s
	}
	cut := []rune(lipgloss.NewStyle().Inline(true).MaxWidth(limit).Render(s))
	for len(cut) > 0 && StringWidth(string(cut)) > limit {
		cut = cut[:len(cut)-1]
	}
	return string(cut)
}
