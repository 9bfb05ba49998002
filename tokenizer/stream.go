package tokenizer

// TokenStream is the ordered result of tokenizing one input. The last
// token is always the single EOF terminator, even for empty input.
// Read-only once Tokenize returns it.
type TokenStream struct {
	tokens []Token
}

func (ts *TokenStream) push(t Token) {
	ts.tokens = append(ts.tokens, t)
}

// Len returns the number of tokens, EOF terminator included.
func (ts *TokenStream) Len() int {
	return len(ts.tokens)
}

// At returns the token at index i in scan order.
func (ts *TokenStream) At(i int) Token {
	return ts.tokens[i]
}

// Reader returns a sequential reader positioned at the first token.
// Multiple readers over the same stream are independent.
func (ts *TokenStream) Reader() *Reader {
	return &Reader{stream: ts}
}

// Reader walks a TokenStream front to back and can be rewound, so
// multi-pass consumers like backtracking parsers can re-read the stream.
type Reader struct {
	stream *TokenStream
	pos    int
}

// Next returns the next token and true, or the zero Token and false once
// the stream is exhausted.
func (r *Reader) Next() (Token, bool) {
	if r.pos >= r.stream.Len() {
		return Token{}, false
	}
	t := r.stream.At(r.pos)
	r.pos++
	return t, true
}

// Reset rewinds the reader to the first token.
func (r *Reader) Reset() {
	r.pos = 0
}
