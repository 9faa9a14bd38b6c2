package render

import "github.com/TimelordUK/viewlog/internal/term"

// TokenKind tells a printable character apart from an escape span
type TokenKind int

const (
	TokenPrintable TokenKind = iota
	TokenEscape
)

// Token is one unit of a logical line as the renderer sees it
type Token struct {
	Kind TokenKind
	Rune rune   // set for TokenPrintable
	Span string // set for TokenEscape, written verbatim
}

// ScanEscape returns the index just past the control sequence whose introducer
// starts at line[i]. It skips the two-character introducer, any run of digits
// and semicolons, and then exactly one final character whatever it is. The
// result never exceeds len(line), so a sequence cut off at the end of the
// buffer simply consumes the rest of it.
func ScanEscape(line []rune, i int) int {
	j := i + 2
	for j < len(line) && isParamRune(line[j]) {
		j++
	}
	j++
	if j > len(line) {
		j = len(line)
	}
	return j
}

// Tokenize splits a line into printable characters and opaque escape spans
func Tokenize(line []rune) []Token {
	tokens := make([]Token, 0, len(line))
	for i := 0; i < len(line); {
		if line[i] == term.Escape {
			end := ScanEscape(line, i)
			tokens = append(tokens, Token{Kind: TokenEscape, Span: string(line[i:end])})
			i = end
			continue
		}
		tokens = append(tokens, Token{Kind: TokenPrintable, Rune: line[i]})
		i++
	}
	return tokens
}

func isParamRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == ';'
}
