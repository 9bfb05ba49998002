package tokenizer

import (
	"errors"
	"fmt"
)

// Lexer errors
var ErrIllegalChar = errors.New("Illegal character")
var ErrUnclosedString = errors.New("Closing \" was expected")
var ErrMalformedNumber = errors.New("Malformed number literal")

// LexError is a fatal scan error. It carries the position the offending
// construct started at and wraps one of the sentinel lexer errors, so
// callers can match with errors.Is.
type LexError struct {
	Err    error
	Line   int
	Column int
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Error on line %d:%d: %v", e.Line, e.Column, e.Err)
}

func (e *LexError) Unwrap() error {
	return e.Err
}
