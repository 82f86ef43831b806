package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/snail/snailfish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder("text", &buf)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(snailfish.MustParse("[[1,2],[[3,4],5]]")))
	assert.Equal(t, "[[1,2],[[3,4],5]]\nmagnitude: 143\n", buf.String())
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder("json", &buf)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(snailfish.MustParse("[[1,2],[[3,4],5]]")))

	var got struct {
		Number    []any `json:"number"`
		Magnitude int   `json:"magnitude"`
		Reduced   bool  `json:"reduced"`
		Depth     int   `json:"depth"`
		Leaves    int   `json:"leaves"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got.Number, 2)
	assert.Equal(t, 143, got.Magnitude)
	assert.True(t, got.Reduced)
	assert.Equal(t, 3, got.Depth)
	assert.Equal(t, 5, got.Leaves)
	assert.True(t, strings.HasPrefix(buf.String(), `{"number":[[1,2],[[3,4],5]],`))
}

func TestJSONEncoderEmptyTree(t *testing.T) {
	text, err := (&JSONEncoder{tree: snailfish.New()}).MarshalText()
	require.NoError(t, err)
	assert.Contains(t, string(text), `"number":null`)
}

func TestUnknownEncoder(t *testing.T) {
	_, err := NewEncoder("yaml", &bytes.Buffer{})
	assert.EqualError(t, err, "unknown format: yaml")
}

func TestHighlight(t *testing.T) {
	mark := func(s string) string { return "<" + s + ">" }
	assert.Equal(t, "[3,<5>]", Highlight("[3,4]", "[3,5]", mark))
	assert.Equal(t, "[3,4]", Highlight("[3,4]", "[3,4]", mark))
}

func TestTracerPlain(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracer(&buf)

	tree := snailfish.Join(
		snailfish.MustParse("[[[[4,3],4],4],[7,[[8,4],9]]]"),
		snailfish.MustParse("[1,1]"),
	)
	require.NoError(t, tr.Start(tree))
	tree.Reduce(snailfish.WithObserver(tr.Observe))

	assert.Equal(t, 5, tr.Steps())
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "     start   [[[[[4,3],4],4],[7,[[8,4],9]]],[1,1]]", lines[0])
	assert.Equal(t, "   1 explode [[[[0,7],4],[7,[[8,4],9]]],[1,1]]", lines[1])
	assert.Equal(t, "   3 split   [[[[0,7],4],[[7,8],[0,13]]],[1,1]]", lines[3])
	assert.Equal(t, "   5 explode [[[[0,7],4],[[7,8],[6,0]]],[8,1]]", lines[5])
}

func TestTracerColorMarksChanges(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTracer(&buf)
	tr.SetColor(true)

	tree := snailfish.MustParse("[[[[[9,8],1],2],3],4]")
	require.NoError(t, tr.Start(tree))
	tree.Reduce(snailfish.WithObserver(tr.Observe))

	assert.Contains(t, buf.String(), "\x1b[")
}
