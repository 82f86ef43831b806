package snailfish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinDoesNotReduce(t *testing.T) {
	sum := Join(MustParse("[[[[4,3],4],4],[7,[[8,4],9]]]"), MustParse("[1,1]"))
	assert.Equal(t, "[[[[[4,3],4],4],[7,[[8,4],9]]],[1,1]]", sum.String())
	assert.False(t, sum.IsReduced())
	checkParents(t, sum)
}

func TestAddReduces(t *testing.T) {
	sum := Add(MustParse("[[[[4,3],4],4],[7,[[8,4],9]]]"), MustParse("[1,1]"))
	assert.Equal(t, "[[[[0,7],4],[[7,8],[6,0]]],[8,1]]", sum.String())
	assert.True(t, sum.IsReduced())
	checkParents(t, sum)
}

func TestAddConsumesOperands(t *testing.T) {
	a := MustParse("[1,2]")
	b := MustParse("[3,4]")
	sum := Add(a, b)
	require.Equal(t, "[[1,2],[3,4]]", sum.String())

	assert.True(t, a.Consumed())
	assert.True(t, b.Consumed())
	assert.Equal(t, "<consumed>", a.String())
	assert.PanicsWithValue(t, ErrConsumed, func() { a.Root() })
	assert.PanicsWithValue(t, ErrConsumed, func() { b.Magnitude() })
	assert.PanicsWithValue(t, ErrConsumed, func() { Add(a, MustParse("1")) })
}

func TestAddToItselfPanics(t *testing.T) {
	a := MustParse("[1,2]")
	assert.Panics(t, func() { Add(a, a) })
	assert.False(t, a.Consumed())
}

func TestAddEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Add(New(), MustParse("1")) })
}

func TestAddSequence(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "four",
			lines: []string{"[1,1]", "[2,2]", "[3,3]", "[4,4]"},
			want:  "[[[[1,1],[2,2]],[3,3]],[4,4]]",
		},
		{
			name:  "five",
			lines: []string{"[1,1]", "[2,2]", "[3,3]", "[4,4]", "[5,5]"},
			want:  "[[[[3,0],[5,3]],[4,4]],[5,5]]",
		},
		{
			name:  "six",
			lines: []string{"[1,1]", "[2,2]", "[3,3]", "[4,4]", "[5,5]", "[6,6]"},
			want:  "[[[[5,0],[7,4]],[5,5]],[6,6]]",
		},
		{
			name: "first two of the larger example",
			lines: []string{
				"[[[0,[4,5]],[0,0]],[[[4,5],[2,6]],[9,5]]]",
				"[7,[[[3,7],[4,3]],[[6,3],[8,8]]]]",
			},
			want: "[[[[4,0],[5,4]],[[7,7],[6,0]]],[[8,[7,7]],[[7,9],[5,0]]]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := MustParse(tt.lines[0])
			for _, line := range tt.lines[1:] {
				sum = Add(sum, MustParse(line))
			}
			assert.Equal(t, tt.want, sum.String())
			checkParents(t, sum)
		})
	}
}
