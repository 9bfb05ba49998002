// Package tokenizer turns raw source text into an ordered TokenStream of
// classified tokens, driven by a langdef.LanguageDefinition.
//
// Scanning is maximal munch with a fixed tie-break order decided by the
// first character of each token: identifier/keyword, then number, then
// string, then operator/punctuator. Within the symbol class the longest
// lexeme defined in the language wins, so == is never read as two =.
// Whitespace and comments (#, // and /* */) produce no tokens.
//
// Tokenize is pure: it either returns a complete stream terminated by a
// single EOF token, or a LexError and no stream at all.
package tokenizer

import (
	"strconv"
	"unicode"

	"lexan/langdef"
)

// Tokenize scans source against the vocabulary in def. def is only read,
// so concurrent calls sharing one definition are safe.
func Tokenize(def *langdef.LanguageDefinition, source string) (*TokenStream, error) {
	t := &tokenizer{
		def:    def,
		s:      newScanner(source),
		stream: &TokenStream{},
	}
	if err := t.scan(); err != nil {
		return nil, err
	}
	return t.stream, nil
}

type tokenizer struct {
	def    *langdef.LanguageDefinition
	s      *scanner
	stream *TokenStream

	// position of the first character of the token being scanned
	start       int
	startLine   int
	startColumn int
}

func (t *tokenizer) scan() error {
	for {
		t.skipBlanks()
		if t.s.isAtEnd() {
			break
		}
		t.markStart()
		if err := t.scanToken(); err != nil {
			return err
		}
	}
	t.markStart()
	t.emit(EOF, nil)
	return nil
}

// skipBlanks consumes whitespace and comments. A block comment left open
// at end of input is terminated by the end of input.
func (t *tokenizer) skipBlanks() {
	for !t.s.isAtEnd() {
		switch c := t.s.peek(); {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			t.s.advance()
		case c == '#':
			t.skipLineComment()
		case c == '/' && t.s.peekAhead(1) == '/':
			t.skipLineComment()
		case c == '/' && t.s.peekAhead(1) == '*':
			t.skipBlockComment()
		default:
			return
		}
	}
}

func (t *tokenizer) skipLineComment() {
	for !t.s.isAtEnd() && t.s.peek() != '\n' {
		t.s.advance()
	}
}

func (t *tokenizer) skipBlockComment() {
	t.s.advance()
	t.s.advance()
	for !t.s.isAtEnd() {
		if t.s.peek() == '*' && t.s.peekAhead(1) == '/' {
			t.s.advance()
			t.s.advance()
			return
		}
		t.s.advance()
	}
}

func (t *tokenizer) markStart() {
	t.start = t.s.current
	t.startLine = t.s.line
	t.startColumn = t.s.column
}

// scanToken classifies by the first character only, in the fixed tie-break
// order: identifier/keyword, number, string, symbol.
func (t *tokenizer) scanToken() error {
	switch c := t.s.peek(); {
	case isAlpha(c):
		t.identifier()
		return nil
	case isDigit(c):
		return t.number()
	case c == '"':
		return t.string()
	default:
		return t.symbol()
	}
}

func (t *tokenizer) identifier() {
	for !t.s.isAtEnd() && isAlphaNumeric(t.s.peek()) {
		t.s.advance()
	}

	if t.def.HasKeyword(t.s.lexeme(t.start, t.s.current)) {
		t.emit(KEYWORD, nil)
	} else {
		t.emit(IDENTIFIER, nil)
	}
}

// number scans integer part, optional fraction and optional exponent.
// A second '.' terminates the literal and is not consumed; a consumed
// exponent marker without following digits is a fatal error.
func (t *tokenizer) number() error {
	for isDigit(t.s.peek()) {
		t.s.advance()
	}

	if t.s.peek() == '.' && isDigit(t.s.peekAhead(1)) {
		t.s.advance()
		for isDigit(t.s.peek()) {
			t.s.advance()
		}
	}

	if c := t.s.peek(); c == 'e' || c == 'E' {
		if next := t.s.peekAhead(1); isDigit(next) || next == '+' || next == '-' {
			t.s.advance()
			if t.s.peek() == '+' || t.s.peek() == '-' {
				t.s.advance()
			}
			if !isDigit(t.s.peek()) {
				return t.errAtStart(ErrMalformedNumber)
			}
			for isDigit(t.s.peek()) {
				t.s.advance()
			}
		}
	}

	literal, err := strconv.ParseFloat(t.s.lexeme(t.start, t.s.current), 64)
	if err != nil {
		return t.errAtStart(ErrMalformedNumber)
	}

	t.emit(NUMBER, literal)
	return nil
}

// string scans a double-quoted literal, decoding \n, \t, \r, \\ and \".
// Unknown escapes are kept verbatim. Raw newlines are allowed and counted.
func (t *tokenizer) string() error {
	t.s.advance()

	var decoded []rune
	for {
		if t.s.isAtEnd() {
			return t.errAtStart(ErrUnclosedString)
		}
		c := t.s.advance()
		if c == '"' {
			break
		}
		if c != '\\' {
			decoded = append(decoded, c)
			continue
		}
		if t.s.isAtEnd() {
			return t.errAtStart(ErrUnclosedString)
		}
		switch e := t.s.advance(); e {
		case 'n':
			decoded = append(decoded, '\n')
		case 't':
			decoded = append(decoded, '\t')
		case 'r':
			decoded = append(decoded, '\r')
		case '\\':
			decoded = append(decoded, '\\')
		case '"':
			decoded = append(decoded, '"')
		default:
			decoded = append(decoded, '\\', e)
		}
	}

	t.emit(STRING, string(decoded))
	return nil
}

// symbol tries the longest defined operator or punctuator starting at the
// cursor, shrinking one character at a time.
func (t *tokenizer) symbol() error {
	max := t.def.MaxSymbolLen()
	if remaining := len(t.s.source) - t.s.current; max > remaining {
		max = remaining
	}

	for l := max; l >= 1; l-- {
		class, ok := t.def.Symbol(t.s.lexeme(t.s.current, t.s.current+l))
		if !ok {
			continue
		}
		for i := 0; i < l; i++ {
			t.s.advance()
		}
		if class == langdef.OperatorSymbol {
			t.emit(OPERATOR, nil)
		} else {
			t.emit(PUNCTUATOR, nil)
		}
		return nil
	}

	return t.errAtStart(ErrIllegalChar)
}

func (t *tokenizer) emit(tokenType TokenType, literal interface{}) {
	t.stream.push(Token{
		Type:    tokenType,
		Lexeme:  t.s.lexeme(t.start, t.s.current),
		Literal: literal,
		Line:    t.startLine,
		Column:  t.startColumn,
		Offset:  t.start,
	})
}

func (t *tokenizer) errAtStart(err error) error {
	return &LexError{
		Err:    err,
		Line:   t.startLine,
		Column: t.startColumn,
		Offset: t.start,
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || unicode.IsDigit(c)
}
