package term

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the output is not attached to a terminal.
var ErrNotTerminal = errors.New("output is not a terminal")

// minRows is one content row plus the status row.
const minRows = 2

// Size returns the terminal dimensions of f as (rows, cols).
func Size(f *os.File) (rows, cols int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNotTerminal
	}
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("get terminal size: %w", err)
	}
	if rows < minRows || cols < 1 {
		return 0, 0, fmt.Errorf("terminal too small: %dx%d", cols, rows)
	}
	return rows, cols, nil
}
