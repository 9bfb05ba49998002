// Package langdef describes the lexical vocabulary of the language to be
// tokenized: its reserved keywords and, optionally, its operator and
// punctuator symbols. A LanguageDefinition is built once, validated at
// construction and never mutated afterwards, so it can be shared across
// any number of concurrent tokenize calls.
package langdef

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidDefinition reports a vocabulary that violates a construction
// invariant: empty entries, keywords that are not identifier-shaped,
// symbols containing letters, digits, quotes or whitespace, or the same
// lexeme appearing in more than one category.
var ErrInvalidDefinition = errors.New("Invalid language definition")

// SymbolClass distinguishes the two categories a symbol lexeme can belong to.
type SymbolClass int

const (
	// OperatorSymbol marks lexemes like =, ==, +, <=.
	OperatorSymbol SymbolClass = iota
	// PunctuatorSymbol marks structural lexemes like (, ), {, ,, ;.
	PunctuatorSymbol
)

// LanguageDefinition holds the reserved words and symbol sets of one
// language. Read-only after New.
type LanguageDefinition struct {
	keywords     map[string]bool
	symbols      map[string]SymbolClass
	maxSymbolLen int
}

// New builds a LanguageDefinition from the given keyword, operator and
// punctuator lexemes. The operator and punctuator slices may be nil or
// empty. The input slices are copied; callers may reuse them freely.
func New(keywords, operators, punctuators []string) (*LanguageDefinition, error) {
	d := &LanguageDefinition{
		keywords: make(map[string]bool, len(keywords)),
		symbols:  make(map[string]SymbolClass, len(operators)+len(punctuators)),
	}

	for _, kw := range keywords {
		if !isKeywordShaped(kw) {
			return nil, fmt.Errorf("%w: keyword %q is not identifier-shaped", ErrInvalidDefinition, kw)
		}
		d.keywords[kw] = true
	}

	if err := d.addSymbols(operators, OperatorSymbol); err != nil {
		return nil, err
	}
	if err := d.addSymbols(punctuators, PunctuatorSymbol); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *LanguageDefinition) addSymbols(lexemes []string, class SymbolClass) error {
	for _, sym := range lexemes {
		if !isSymbolShaped(sym) {
			return fmt.Errorf("%w: symbol %q must consist of symbol characters only", ErrInvalidDefinition, sym)
		}
		if d.keywords[sym] {
			return fmt.Errorf("%w: %q defined as both keyword and symbol", ErrInvalidDefinition, sym)
		}
		if prev, ok := d.symbols[sym]; ok && prev != class {
			return fmt.Errorf("%w: %q defined as both operator and punctuator", ErrInvalidDefinition, sym)
		}
		d.symbols[sym] = class
		if n := len([]rune(sym)); n > d.maxSymbolLen {
			d.maxSymbolLen = n
		}
	}
	return nil
}

// HasKeyword returns true if word is a reserved keyword of the language.
func (d *LanguageDefinition) HasKeyword(word string) bool {
	return d.keywords[word]
}

// Symbol looks up an exact operator or punctuator lexeme and reports its
// class. The tokenizer calls this with progressively shorter candidates to
// realize longest-match scanning.
func (d *LanguageDefinition) Symbol(lexeme string) (SymbolClass, bool) {
	class, ok := d.symbols[lexeme]
	return class, ok
}

// MaxSymbolLen returns the length in characters of the longest defined
// operator or punctuator, the upper bound for longest-match attempts.
func (d *LanguageDefinition) MaxSymbolLen() int {
	return d.maxSymbolLen
}

func isKeywordShaped(kw string) bool {
	runes := []rune(kw)
	if len(runes) == 0 {
		return false
	}
	for i, r := range runes {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func isSymbolShaped(sym string) bool {
	if sym == "" {
		return false
	}
	for _, r := range sym {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '"' || r == '_' {
			return false
		}
	}
	return true
}
