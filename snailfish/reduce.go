package snailfish

import "fmt"

const (
	// maxDepth is the deepest a leaf may sit in a reduced number.
	maxDepth = 4
	// maxValue is the largest value a leaf may hold in a reduced number.
	maxValue = 9
)

type StepKind int

const (
	Explode StepKind = iota + 1
	Split
)

func (k StepKind) String() string {
	switch k {
	case Explode:
		return "explode"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// Step describes one application of a reduction rule.
type Step struct {
	Kind StepKind
	// Node is the pair that exploded (now a 0 leaf) or the leaf that split
	// (now a pair). Its id does not change.
	Node NodeID
	// For an explode, the values carried to the neighbours; for a split,
	// the values of the new children.
	Left, Right int
	// Depth of Node when the rule fired.
	Depth int
}

func (s Step) String() string {
	return fmt.Sprintf("%s node=%d depth=%d (%d,%d)", s.Kind, s.Node, s.Depth, s.Left, s.Right)
}

type ReduceOption func(*reduceConfig)

type reduceConfig struct {
	observe func(Step, *Tree)
}

// WithObserver calls fn after every step, with the tree in its new state.
func WithObserver(fn func(Step, *Tree)) ReduceOption {
	return func(c *reduceConfig) {
		c.observe = fn
	}
}

// Reduce applies explode and split until neither applies and returns the
// number of steps taken. Reducing a reduced tree does nothing.
func (t *Tree) Reduce(opts ...ReduceOption) int {
	var cfg reduceConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	steps := 0
	for {
		step, ok := t.Step()
		if !ok {
			return steps
		}
		steps++
		if cfg.observe != nil {
			cfg.observe(step, t)
		}
	}
}

// Step applies a single reduction rule. Explodes always take priority over
// splits, and within a rule the leftmost candidate wins. It reports false
// when the tree is already reduced.
func (t *Tree) Step() (Step, bool) {
	if pair := t.findExplode(); pair != None {
		return t.explode(pair), true
	}
	if leaf := t.findSplit(); leaf != None {
		return t.split(leaf), true
	}
	return Step{}, false
}

// IsReduced reports whether no rule applies.
func (t *Tree) IsReduced() bool {
	return t.findExplode() == None && t.findSplit() == None
}

// findExplode returns the parent of the leftmost leaf nested too deep.
func (t *Tree) findExplode() NodeID {
	for leaf := range t.Leaves() {
		if t.Depth(leaf) > maxDepth {
			return t.nodes[leaf].parent
		}
	}
	return None
}

func (t *Tree) findSplit() NodeID {
	for leaf := range t.Leaves() {
		if t.nodes[leaf].value > maxValue {
			return leaf
		}
	}
	return None
}

// explode adds the pair's left value to the nearest leaf on its left and
// its right value to the nearest leaf on its right, then turns the pair
// into a 0 leaf. The pair must hold two leaves and must not be the root.
func (t *Tree) explode(pair NodeID) Step {
	n := t.at(pair)
	if n.parent == None {
		panic("snailfish: explode at the root")
	}
	if n.left == None || t.nodes[n.left].left != None || t.nodes[n.right].left != None {
		panic(fmt.Sprintf("snailfish: cannot explode %s", t.Format(pair)))
	}

	l, r := n.left, n.right
	step := Step{
		Kind:  Explode,
		Node:  pair,
		Left:  t.nodes[l].value,
		Right: t.nodes[r].value,
		Depth: t.Depth(pair),
	}
	if nb := t.NextLeft(pair); nb != None {
		t.nodes[nb].value += step.Left
	}
	if nb := t.NextRight(pair); nb != None {
		t.nodes[nb].value += step.Right
	}

	t.release(l)
	t.release(r)
	t.nodes[pair].left = None
	t.nodes[pair].right = None
	t.nodes[pair].value = 0
	return step
}

// split replaces a leaf with a pair of its halves, rounding the left half
// down and the right half up.
func (t *Tree) split(leaf NodeID) Step {
	if !t.IsLeaf(leaf) {
		panic(fmt.Sprintf("snailfish: cannot split pair %s", t.Format(leaf)))
	}
	v := t.nodes[leaf].value
	step := Step{
		Kind:  Split,
		Node:  leaf,
		Left:  v / 2,
		Right: (v + 1) / 2,
		Depth: t.Depth(leaf),
	}

	// alloc may grow the arena, so no node pointers are held across it.
	l := t.Leaf(step.Left)
	r := t.Leaf(step.Right)
	t.nodes[l].parent = leaf
	t.nodes[r].parent = leaf
	t.nodes[leaf].left = l
	t.nodes[leaf].right = r
	t.nodes[leaf].value = 0
	return step
}
