// Package lex tokenizes snailfish numbers.
//
// Tokens are defined by the lowercase (lexical) productions of an EBNF grammar
// (see snailfish.ebnf). The lexer tries every token production at the
// current offset and keeps the longest match, so the grammar file is the
// single source of truth for what a token looks like.
package lex

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// Start is the grammar's start production.
const Start = "Number"

//go:embed snailfish.ebnf
var grammarSource []byte

// Kind names a token production.
type Kind string

const (
	Open  Kind = "open"
	Close Kind = "close"
	Comma Kind = "comma"
	Digit Kind = "digit"
	Error Kind = "ERROR"
	EOF   Kind = "EOF"
)

// Position represents a location in the input.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with its position.
type Token struct {
	Kind     Kind
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// Source returns the embedded grammar text.
func Source() []byte {
	return bytes.Clone(grammarSource)
}

var (
	grammarOnce sync.Once
	grammar     ebnf.Grammar
	grammarErr  error
)

// Grammar returns the embedded grammar, parsed and verified against Start.
func Grammar() (ebnf.Grammar, error) {
	grammarOnce.Do(func() {
		grammar, grammarErr = ParseGrammar("snailfish.ebnf", bytes.NewReader(grammarSource), Start)
	})
	return grammar, grammarErr
}

// MustGrammar is like Grammar but panics if the embedded grammar is broken.
func MustGrammar() ebnf.Grammar {
	g, err := Grammar()
	if err != nil {
		panic(fmt.Sprintf("lex: embedded grammar: %v", err))
	}
	return g
}

// ParseGrammar parses a grammar read from r and verifies it against the
// start production.
func ParseGrammar(filename string, r io.Reader, start string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// LoadGrammar loads a grammar from a file and verifies it against start.
func LoadGrammar(filename, start string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()
	return ParseGrammar(filename, f, start)
}

type Option func(*Lexer)

// WithFile sets the file name reported in positions.
func WithFile(name string) Option {
	return func(l *Lexer) {
		l.filename = name
	}
}

// WithStartLine sets the initial line number (default 1).
func WithStartLine(line int) Option {
	return func(l *Lexer) {
		l.line = line
	}
}

// WithStartColumn sets the initial column number (default 1).
func WithStartColumn(column int) Option {
	return func(l *Lexer) {
		l.column = column
	}
}

// WithGrammar replaces the embedded grammar.
func WithGrammar(g ebnf.Grammar) Option {
	return func(l *Lexer) {
		l.grammar = g
	}
}

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes input based on an EBNF grammar.
type Lexer struct {
	grammar  ebnf.Grammar
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int  // match length per (production, offset); -1 = no match
	visiting map[memoKey]bool // cycle detection
}

// New creates a lexer over input using the embedded grammar unless
// WithGrammar is given.
func New(input []byte, opts ...Option) *Lexer {
	l := &Lexer{
		input:    input,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.grammar == nil {
		l.grammar = MustGrammar()
	}
	return l
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// NextToken returns the next token from the input. Every token production
// is tried at the current offset and the longest match wins. A byte that no
// production matches comes back as a one-byte Error token.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: EOF, Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	startOffset := l.pos

	// Offsets only move forward, so cached results are stale after each token.
	clear(l.memo)

	var bestKind string
	var bestLen int
	for name, prod := range l.grammar {
		if prod.Expr == nil || !isToken(name) {
			continue
		}
		clear(l.visiting)
		n := l.tryMatch(prod.Expr, startOffset)
		// Ties go to the lexically smaller name so map order never matters.
		if n > bestLen || (n == bestLen && n > 0 && name < bestKind) {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		ch := l.advance()
		return Token{
			Kind:     Error,
			Literal:  string(ch),
			Position: startPos,
		}, nil
	}

	for i := 0; i < bestLen; i++ {
		l.advance()
	}

	return Token{
		Kind:     Kind(bestKind),
		Literal:  string(l.input[startOffset : startOffset+bestLen]),
		Position: startPos,
	}, nil
}

// isToken reports whether name is a lexical production. ebnf treats every
// name that does not start with an upper-case letter as lexical.
func isToken(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r != utf8.RuneError && !unicode.IsUpper(r)
}

// tryMatch returns the length of the match of expr at offset, or 0.
func (l *Lexer) tryMatch(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		return l.tryMatchToken(e.String, offset)

	case *ebnf.Range:
		return l.tryMatchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.tryMatch(item, offset+total)
			if n == 0 {
				return 0
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := 0
		for _, alt := range e {
			if n := l.tryMatch(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := l.tryMatch(e.Body, offset+total)
			if n == 0 {
				break
			}
			total += n
		}
		return total

	case *ebnf.Option:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Group:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Name:
		return l.tryMatchName(e.String, offset)

	default:
		return 0
	}
}

// tryMatchName matches a named production with memoization and cycle detection.
func (l *Lexer) tryMatchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}

	if result, ok := l.memo[key]; ok {
		if result == -1 {
			return 0
		}
		return result
	}

	// Left recursion.
	if l.visiting[key] {
		return 0
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return 0
	}

	l.visiting[key] = true
	result := l.tryMatch(prod.Expr, offset)
	delete(l.visiting, key)

	if result == 0 {
		l.memo[key] = -1
	} else {
		l.memo[key] = result
	}
	return result
}

func (l *Lexer) tryMatchToken(token string, offset int) int {
	s := strings.Trim(token, "\"")
	if s == "" || offset+len(s) > len(l.input) {
		return 0
	}
	if string(l.input[offset:offset+len(s)]) == s {
		return len(s)
	}
	return 0
}

// tryMatchRange matches a single-byte character range such as "0" … "9".
func (l *Lexer) tryMatchRange(begin, end string, offset int) int {
	if offset >= len(l.input) {
		return 0
	}
	beginChar := strings.Trim(begin, "\"")
	endChar := strings.Trim(end, "\"")
	if len(beginChar) != 1 || len(endChar) != 1 {
		return 0
	}
	ch := l.input[offset]
	if ch >= beginChar[0] && ch <= endChar[0] {
		return 1
	}
	return 0
}

// Tokenize reads all tokens from input. The final token is always EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			tokens = append(tokens, tok)
			break
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
