package snailfish

import (
	"errors"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("snail.snailfish")

// ErrTooFewNumbers is returned by MaxMagnitude when fewer than two numbers
// are given.
var ErrTooFewNumbers = errors.New("need at least two snailfish numbers")

// PairResult identifies the ordered pair of inputs whose sum has the
// largest magnitude.
type PairResult struct {
	Magnitude   int
	Left, Right int // indices into the input slice
}

// MaxMagnitude adds every ordered pair of distinct inputs and returns the
// pair whose reduced sum has the largest magnitude. Inputs are told apart
// by position, so two equal lines still form a pair. The inputs are cloned
// for every sum and are left untouched.
func MaxMagnitude(trees []*Tree) (PairResult, error) {
	if len(trees) < 2 {
		return PairResult{}, ErrTooFewNumbers
	}
	best := PairResult{Magnitude: -1}
	evaluated := 0
	for i, a := range trees {
		for j, b := range trees {
			if i == j {
				continue
			}
			m := Add(a.Clone(), b.Clone()).Magnitude()
			evaluated++
			if m > best.Magnitude {
				best = PairResult{Magnitude: m, Left: i, Right: j}
			}
		}
	}
	log.Debugf("evaluated %d ordered pairs, best is %d+%d with magnitude %d",
		evaluated, best.Left, best.Right, best.Magnitude)
	return best, nil
}

// Sum adds the numbers left to right and returns the reduced total. It
// consumes its arguments.
func Sum(trees []*Tree) (*Tree, error) {
	if len(trees) == 0 {
		return nil, ErrEmptyInput
	}
	total := trees[0]
	total.Reduce()
	for _, t := range trees[1:] {
		total = Add(total, t)
	}
	log.Debugf("summed %d numbers", len(trees))
	return total, nil
}
