package snailfish

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/snail/snailfish/lex"
)

// ErrEmptyInput is returned when an input holds no numbers.
var ErrEmptyInput = errors.New("no snailfish numbers in input")

// SyntaxError reports malformed input.
type SyntaxError struct {
	Pos lex.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// frame is an open bracket whose pair is not complete yet.
type frame struct {
	open  lex.Token
	base  int // operand stack height at the bracket
	comma bool
}

type parser struct {
	tree     *Tree
	operands []NodeID
	frames   []frame
	want     bool // a number is expected next
}

func (p *parser) fail(tok lex.Token, format string, args ...any) error {
	return &SyntaxError{Pos: tok.Position, Msg: fmt.Sprintf(format, args...)}
}

func describe(tok lex.Token) string {
	switch tok.Kind {
	case lex.EOF:
		return "end of input"
	case lex.Error:
		return fmt.Sprintf("invalid character %q", tok.Literal)
	default:
		return fmt.Sprintf("%q", tok.Literal)
	}
}

func (p *parser) push(tok lex.Token) error {
	switch tok.Kind {
	case lex.Digit:
		if !p.want {
			return p.fail(tok, "unexpected %s", describe(tok))
		}
		p.operands = append(p.operands, p.tree.Leaf(int(tok.Literal[0]-'0')))
		p.want = false

	case lex.Open:
		if !p.want {
			return p.fail(tok, "unexpected %s", describe(tok))
		}
		p.frames = append(p.frames, frame{open: tok, base: len(p.operands)})

	case lex.Comma:
		if len(p.frames) == 0 || p.want {
			return p.fail(tok, "unexpected %s", describe(tok))
		}
		top := &p.frames[len(p.frames)-1]
		if top.comma {
			return p.fail(tok, "pair has more than two elements")
		}
		top.comma = true
		p.want = true

	case lex.Close:
		if len(p.frames) == 0 || p.want {
			return p.fail(tok, "unexpected %s", describe(tok))
		}
		top := p.frames[len(p.frames)-1]
		if !top.comma {
			return p.fail(tok, "pair has only one element")
		}
		p.frames = p.frames[:len(p.frames)-1]
		n := len(p.operands)
		l, r := p.operands[n-2], p.operands[n-1]
		p.operands = append(p.operands[:n-2], p.tree.Pair(l, r))

	case lex.EOF:
		if len(p.frames) > 0 {
			open := p.frames[len(p.frames)-1].open
			return p.fail(open, "unclosed %q", open.Literal)
		}
		if p.want {
			return p.fail(tok, "expected a number, got %s", describe(tok))
		}

	default:
		expected := "a digit or '['"
		if !p.want {
			expected = "',' or ']'"
		}
		return p.fail(tok, "expected %s, got %s", expected, describe(tok))
	}
	return nil
}

// Parse builds a tree from one snailfish literal such as "[[1,2],3]".
// Leaf literals are single digits.
func Parse(line string, opts ...lex.Option) (*Tree, error) {
	tokens, err := lex.New([]byte(line), opts...).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{tree: New(), want: true}
	for _, tok := range tokens {
		if err := p.push(tok); err != nil {
			return nil, err
		}
	}
	p.tree.SetRoot(p.operands[0])
	return p.tree, nil
}

// MustParse is like Parse but panics on error.
func MustParse(line string) *Tree {
	t, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseAll parses one number per line of r. Blank lines are skipped and
// surrounding whitespace is ignored. The first malformed line aborts the
// whole parse.
func ParseAll(r io.Reader, filename string) ([]*Tree, error) {
	var trees []*Tree
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line, indent := TrimLine(scanner.Text())
		if line == "" {
			continue
		}
		t, err := Parse(line, lex.WithFile(filename), lex.WithStartLine(lineNo), lex.WithStartColumn(indent+1))
		if err != nil {
			return nil, fmt.Errorf("parse line %d: %w", lineNo, err)
		}
		trees = append(trees, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	log.Debugf("parsed %d numbers from %s", len(trees), filename)
	return trees, nil
}

// TrimLine strips surrounding whitespace from an input line and returns the
// number of bytes dropped from the front.
func TrimLine(raw string) (line string, indent int) {
	line = strings.TrimRight(raw, " \t\r")
	trimmed := strings.TrimLeft(line, " \t")
	return trimmed, len(line) - len(trimmed)
}
