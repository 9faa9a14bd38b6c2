package render

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// widthCondition measures with East Asian ambiguous characters as narrow,
// independent of the locale environment runewidth would otherwise consult.
var widthCondition = &runewidth.Condition{EastAsianWidth: false}

// RuneWidth returns the number of terminal columns r occupies: 0 for combining
// and zero-width code points, 2 for wide and fullwidth ones, 1 otherwise.
// Control characters and invalid code points have no defined width and count
// as 1 so the cursor bookkeeping errs towards wrapping early.
func RuneWidth(r rune) int {
	if !utf8.ValidRune(r) || isControl(r) {
		return 1
	}
	return widthCondition.RuneWidth(r)
}

// StringWidth returns the sum of the widths of the runes in s
func StringWidth(s string) int {
	width := 0
	for _, r := range s {
		width += RuneWidth(r)
	}
	return width
}

func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r < 0xa0)
}
