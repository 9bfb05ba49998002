package tokenizer

// TokenType classifies a token. The set is closed: downstream stages can
// switch over it exhaustively.
type TokenType int

const (
	EOF TokenType = iota - 1

	// Reserved word from the language definition.
	KEYWORD

	// Word that is not reserved: variable, constant or function name.
	IDENTIFIER

	// Numeric literal. 10, 3.14, 1e9
	NUMBER

	// Double-quoted string literal.
	STRING

	// Operator symbol from the language definition. =, ==, +
	OPERATOR

	// Punctuator symbol from the language definition. (, ), {, ;, ,
	PUNCTUATOR
)

var tokenTypeNames = map[TokenType]string{
	EOF:        "EOF",
	KEYWORD:    "KEYWORD",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	OPERATOR:   "OPERATOR",
	PUNCTUATOR: "PUNCTUATOR",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is one classified lexical unit.
//
// Lexeme is always the exact source substring the token was scanned from,
// empty only for the terminating EOF token. Literal carries the decoded
// value for literal kinds: float64 for NUMBER, the unquoted escape-decoded
// string for STRING, nil for everything else.
//
// Line and Column are 1-based and counted in characters, not bytes.
// Offset is the 0-based character offset of the lexeme's first character.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
	Offset  int
}
