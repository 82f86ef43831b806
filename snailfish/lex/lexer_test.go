package lex

import (
	"strings"
	"testing"
)

func kinds(tokens []Token) []Kind {
	var result []Kind
	for _, tok := range tokens {
		result = append(result, tok.Kind)
	}
	return result
}

func TestEmbeddedGrammarVerifies(t *testing.T) {
	g, err := Grammar()
	if err != nil {
		t.Fatalf("Grammar() error = %v", err)
	}
	for _, name := range []string{"Number", "Pair", "open", "close", "comma", "digit"} {
		if _, ok := g[name]; !ok {
			t.Errorf("grammar is missing production %q", name)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{"digit", "7", []Kind{Digit, EOF}},
		{"pair", "[1,2]", []Kind{Open, Digit, Comma, Digit, Close, EOF}},
		{"multi digit splits", "10", []Kind{Digit, Digit, EOF}},
		{"unknown byte", "[a]", []Kind{Open, Error, Close, EOF}},
		{"space is not a token", "[1, 2]", []Kind{Open, Digit, Comma, Error, Digit, Close, EOF}},
		{"empty", "", []Kind{EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := New([]byte(tt.input)).Tokenize()
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			got := kinds(tokens)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d of %q = %s, want %s", i, tt.input, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenPositions(t *testing.T) {
	tokens, err := New([]byte("[3,4]"), WithFile("in.txt"), WithStartLine(7)).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	digit := tokens[3]
	if digit.Literal != "4" {
		t.Fatalf("tokens[3].Literal = %q, want %q", digit.Literal, "4")
	}
	if got := digit.Position.String(); got != "in.txt:7:4" {
		t.Errorf("tokens[3].Position = %s, want in.txt:7:4", got)
	}
	if digit.Position.Offset != 3 {
		t.Errorf("tokens[3].Position.Offset = %d, want 3", digit.Position.Offset)
	}
}

func TestCustomGrammar(t *testing.T) {
	src := `
Sentence = word .
word = "a" … "z" { "a" … "z" } .
`
	g, err := ParseGrammar("words.ebnf", strings.NewReader(src), "Sentence")
	if err != nil {
		t.Fatalf("ParseGrammar() error = %v", err)
	}
	tokens, err := New([]byte("snail"), WithGrammar(g)).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(tokens) != 2 || tokens[0].Kind != "word" || tokens[0].Literal != "snail" {
		t.Errorf("Tokenize() = %v, want one word token", tokens)
	}
}

func TestParseGrammarRejectsUndefinedProduction(t *testing.T) {
	src := `Number = digit | Pair .`
	if _, err := ParseGrammar("broken.ebnf", strings.NewReader(src), Start); err == nil {
		t.Error("ParseGrammar() succeeded on a grammar with undefined productions")
	}
}

func TestGrammarCaseConvention(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"digit", true},
		{"open", true},
		{"Number", false},
		{"Pair", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isToken(tt.name); got != tt.want {
			t.Errorf("isToken(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// A lowercase production is lexical and may not refer to a capitalised one.
func TestGrammarRejectsLexicalReferenceToSyntax(t *testing.T) {
	src := `
number = Digit .
Digit = "0" … "9" .
`
	_, err := ParseGrammar("inverted.ebnf", strings.NewReader(src), "number")
	if err == nil || !strings.Contains(err.Error(), "non-lexical production Digit") {
		t.Errorf("ParseGrammar() error = %v, want reference to non-lexical production", err)
	}
}

func TestParseEmbeddedGrammarDoesNotPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("New() panicked: %v", r)
		}
	}()
	tokens, err := New([]byte("[[1,2],3]")).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(tokens) != 10 {
		t.Errorf("Tokenize() = %d tokens, want 10", len(tokens))
	}
}

func TestStartColumn(t *testing.T) {
	tokens, err := New([]byte("[3,4]"), WithStartLine(2), WithStartColumn(3)).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if got := tokens[1].Position.String(); got != "2:4" {
		t.Errorf("tokens[1].Position = %s, want 2:4", got)
	}
}
