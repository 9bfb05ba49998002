package tokenizer

// scanner is the character cursor: it walks the decoded character sequence
// of the input and keeps line, column and offset in sync. Columns count
// characters so diagnostics stay correct on multi-byte input.
type scanner struct {
	source  []rune
	current int
	line    int
	column  int
}

func newScanner(source string) *scanner {
	return &scanner{
		source: []rune(source),
		line:   1,
		column: 1,
	}
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// peek returns the current character without consuming it, 0 at end of input.
func (s *scanner) peek() rune {
	return s.peekAhead(0)
}

// peekAhead returns the character n positions past the current one without
// consuming anything, 0 past the end of input.
func (s *scanner) peekAhead(n int) rune {
	if s.current+n >= len(s.source) {
		return 0
	}
	return s.source[s.current+n]
}

// advance consumes one character. Consuming a newline moves the cursor to
// column 1 of the next line.
func (s *scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

// lexeme returns the source text between two character offsets.
func (s *scanner) lexeme(from, to int) string {
	return string(s.source[from:to])
}
