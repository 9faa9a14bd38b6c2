package highlight

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
)

const (
	formatter = "terminal16m"
	theme     = "monokai"
)

// Highlighter transforms a completed line before it is rendered
type Highlighter interface {
	Highlight(line []rune) []rune
}

// Plain returns lines unchanged
type Plain struct{}

// Highlight implements Highlighter
func (Plain) Highlight(line []rune) []rune { return line }

// Syntax applies syntax highlighting based on file type
type Syntax struct {
	lexerName string
}

// New returns a syntax highlighter for filename when enabled and a lexer
// matches its name, and Plain otherwise.
func New(filename string, enabled bool) Highlighter {
	if !enabled {
		return Plain{}
	}
	lexer := lexers.Match(filename)
	if lexer == nil {
		return Plain{}
	}
	return &Syntax{lexerName: lexer.Config().Name}
}

// Lexer reports the chroma lexer in use
func (s *Syntax) Lexer() string { return s.lexerName }

// Highlight implements Highlighter. Lines that already carry escape
// sequences are left alone.
func (s *Syntax) Highlight(line []rune) []rune {
	if len(line) == 0 {
		return line
	}
	content := string(line)
	if strings.ContainsRune(content, '\x1b') {
		return line
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, s.lexerName, formatter, theme); err != nil {
		return line
	}

	// Remove any newlines that quick.Highlight adds
	highlighted := buf.String()
	highlighted = strings.ReplaceAll(highlighted, "\n", "")
	highlighted = strings.ReplaceAll(highlighted, "\r", "")
	return []rune(highlighted)
}
