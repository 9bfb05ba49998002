package tokenizer

import "testing"

func TestStreamIndexedAccess(t *testing.T) {
	stream := checkTokens(t, "let a = 1", []wantToken{
		{KEYWORD, "let", 0, 0},
		{IDENTIFIER, "a", 0, 0},
		{OPERATOR, "=", 0, 0},
		{NUMBER, "1", 0, 0},
		{EOF, "", 0, 0},
	})

	if stream.Len() != 5 {
		t.Fatalf("stream length %d, want 5", stream.Len())
	}
	if got := stream.At(1); got.Lexeme != "a" {
		t.Errorf("At(1) = %q, want %q", got.Lexeme, "a")
	}
	if got := stream.At(4); got.Type != EOF {
		t.Errorf("At(4) = %v, want EOF", got.Type)
	}
}

func TestReaderTraversalAndReset(t *testing.T) {
	stream := checkTokens(t, "a b", []wantToken{
		{IDENTIFIER, "a", 0, 0},
		{IDENTIFIER, "b", 0, 0},
		{EOF, "", 0, 0},
	})

	r := stream.Reader()

	var first []string
	for tok, ok := r.Next(); ok; tok, ok = r.Next() {
		first = append(first, tok.Type.String())
	}
	if len(first) != 3 {
		t.Fatalf("first pass read %d tokens, want 3", len(first))
	}
	if _, ok := r.Next(); ok {
		t.Error("exhausted reader should keep returning false")
	}

	// A reset reader replays the stream from the beginning.
	r.Reset()
	var second []string
	for tok, ok := r.Next(); ok; tok, ok = r.Next() {
		second = append(second, tok.Type.String())
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("second pass diverged at %d: %s != %s", i, first[i], second[i])
		}
	}
}

func TestReadersAreIndependent(t *testing.T) {
	stream := checkTokens(t, "a b", []wantToken{
		{IDENTIFIER, "a", 0, 0},
		{IDENTIFIER, "b", 0, 0},
		{EOF, "", 0, 0},
	})

	r1 := stream.Reader()
	r2 := stream.Reader()

	r1.Next()
	r1.Next()

	tok, ok := r2.Next()
	if !ok || tok.Lexeme != "a" {
		t.Errorf("second reader saw %q, want %q", tok.Lexeme, "a")
	}
}
