package render

// Cursor is the renderer's belief of where the terminal cursor is. It is never
// read back from the terminal; every write that moves the real cursor must
// also move this one.
type Cursor struct {
	lastRow int // the status row; content rows are 0..lastRow-1
	cols    int

	row, col           int
	savedRow, savedCol int
}

// NewCursor creates a cursor at the origin of a rows x cols terminal
func NewCursor(rows, cols int) Cursor {
	lastRow := rows - 1
	if lastRow < 0 {
		lastRow = 0
	}
	return Cursor{lastRow: lastRow, cols: cols}
}

// Row returns the current 0-based row
func (c *Cursor) Row() int { return c.row }

// Col returns the current 0-based column
func (c *Cursor) Col() int { return c.col }

// LastRow returns the row reserved for the status bar. The cursor row stops
// here and stays pinned while the terminal scrolls underneath it.
func (c *Cursor) LastRow() int { return c.lastRow }

// Cols returns the terminal width
func (c *Cursor) Cols() int { return c.cols }

// Advance moves the cursor n columns right without checking the width
func (c *Cursor) Advance(n int) {
	c.col += n
}

// Newline moves to the start of the next row, or stays on the last row
func (c *Cursor) Newline() {
	if c.row < c.lastRow {
		c.row++
	}
	c.col = 0
}

// Fits reports whether n more columns fit on the current row. The final
// column is kept free so nothing is ever written onto the wrap boundary.
func (c *Cursor) Fits(n int) bool {
	return c.col+n < c.cols
}

// MoveTo places the cursor at an absolute position
func (c *Cursor) MoveTo(row, col int) {
	c.row = row
	c.col = col
}

// Save remembers the current position
func (c *Cursor) Save() {
	c.savedRow = c.row
	c.savedCol = c.col
}

// Restore returns to the saved position
func (c *Cursor) Restore() {
	c.row = c.savedRow
	c.col = c.savedCol
}

// Reset moves the cursor to the origin, used after a full screen clear
func (c *Cursor) Reset() {
	c.row = 0
	c.col = 0
}
