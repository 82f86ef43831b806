package snailfish

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"0",
		"[1,2]",
		"[[1,2],3]",
		"[9,[8,7]]",
		"[[1,9],[8,5]]",
		"[[[[1,2],[3,4]],[[5,6],[7,8]]],9]",
		"[[[9,[3,8]],[[0,9],6]],[[[3,7],[4,9]],3]]",
		"[[[[1,3],[5,3]],[[1,3],[8,7]]],[[[4,9],[6,9]],[[8,2],[7,3]]]]",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, input, tree.String())
			checkParents(t, tree)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   string
		msg   string
	}{
		{"", "1:1", "expected a number, got end of input"},
		{"[1,2", "1:1", `unclosed "["`},
		{"[1,2]]", "1:6", `unexpected "]"`},
		{"[1]", "1:3", "pair has only one element"},
		{"[1,2,3]", "1:5", "pair has more than two elements"},
		{"[12,3]", "1:3", `unexpected "2"`},
		{"[1,a]", "1:4", `expected a digit or '[', got invalid character "a"`},
		{"[1 ,2]", "1:3", `expected ',' or ']', got invalid character " "`},
		{"[,1]", "1:2", `unexpected ","`},
		{"1,2", "1:2", `unexpected ","`},
		{"[1,2][3,4]", "1:6", `unexpected "["`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "error %v is not a *SyntaxError", err)
			assert.Equal(t, tt.pos, syntaxErr.Pos.String())
			assert.Equal(t, tt.msg, syntaxErr.Msg)
		})
	}
}

func TestParseAll(t *testing.T) {
	input := "[1,2]\r\n\n[[3,4],5]  \n9\n"
	trees, err := ParseAll(strings.NewReader(input), "numbers.txt")
	require.NoError(t, err)
	require.Len(t, trees, 3)
	assert.Equal(t, "[1,2]", trees[0].String())
	assert.Equal(t, "[[3,4],5]", trees[1].String())
	assert.Equal(t, "9", trees[2].String())
}

func TestParseAllFailsFast(t *testing.T) {
	input := "[1,2]\n[3,x]\n[5,6]\n"
	trees, err := ParseAll(strings.NewReader(input), "numbers.txt")
	assert.Nil(t, trees)
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "numbers.txt:2:4", syntaxErr.Pos.String())
	assert.Contains(t, err.Error(), "parse line 2")
}

func TestParseAllIndentedLines(t *testing.T) {
	trees, err := ParseAll(strings.NewReader("  [1,2]\n\t9\n"), "numbers.txt")
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.Equal(t, "[1,2]", trees[0].String())

	_, err = ParseAll(strings.NewReader("[1,2]\n  [3,x]\n"), "numbers.txt")
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "numbers.txt:2:6", syntaxErr.Pos.String(), "column counts the indent")
}

func TestTrimLine(t *testing.T) {
	tests := []struct {
		raw    string
		line   string
		indent int
	}{
		{"[1,2]", "[1,2]", 0},
		{"  [1,2]\r", "[1,2]", 2},
		{"\t 7 ", "7", 2},
		{"   ", "", 0},
	}
	for _, tt := range tests {
		line, indent := TrimLine(tt.raw)
		assert.Equal(t, tt.line, line, "TrimLine(%q)", tt.raw)
		assert.Equal(t, tt.indent, indent, "TrimLine(%q)", tt.raw)
	}
}

func TestParseAllEmpty(t *testing.T) {
	trees, err := ParseAll(strings.NewReader("\n\n"), "empty.txt")
	require.NoError(t, err)
	assert.Empty(t, trees)
}
