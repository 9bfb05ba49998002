package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"lexan/langdef"
	"lexan/tokenizer"
)

// Demo vocabulary used when dumping a file's token stream. Real callers
// construct their own definition; this one exists so the tool works out
// of the box.
var demoKeywords = []string{
	"and", "class", "else", "false", "fn", "for", "if", "elif",
	"nil", "or", "return", "super", "this", "true", "let", "while",
	"not", "in",
}

var demoOperators = []string{
	"=", "==", "!=", "<", "<=", ">", ">=", "+", "-", "*", "/", "%", "^",
}

var demoPunctuators = []string{
	"(", ")", "[", "]", "{", "}", ",", ".", ":", ";",
}

func main() {
	argsWithoutProg := os.Args[1:]

	if len(argsWithoutProg) != 1 {
		fmt.Println("Usage: lexan /path/to/source")
		return
	}

	absPath, err := filepath.Abs(argsWithoutProg[0])
	if err != nil {
		logrus.Fatal(err)
	}

	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		logrus.Fatal(err)
	}

	def, err := langdef.New(demoKeywords, demoOperators, demoPunctuators)
	if err != nil {
		logrus.Fatal(err)
	}

	stream, err := tokenizer.Tokenize(def, string(b))
	if err != nil {
		if lexErr, ok := err.(*tokenizer.LexError); ok {
			logrus.WithFields(logrus.Fields{
				"line":   lexErr.Line,
				"column": lexErr.Column,
			}).Fatal(lexErr.Err)
		}
		logrus.Fatal(err)
	}

	reader := stream.Reader()
	for tok, ok := reader.Next(); ok; tok, ok = reader.Next() {
		fmt.Printf("%s %-22s %s\n",
			color.Cyan(fmt.Sprintf("%4d:%-4d", tok.Line, tok.Column)),
			colorType(tok.Type),
			tok.Lexeme,
		)
	}
}

func colorType(t tokenizer.TokenType) string {
	switch t {
	case tokenizer.KEYWORD:
		return color.Magenta(t)
	case tokenizer.NUMBER, tokenizer.STRING:
		return color.Green(t)
	case tokenizer.OPERATOR, tokenizer.PUNCTUATOR:
		return color.Yellow(t)
	default:
		return color.Blue(t)
	}
}
