package snailfish

// Join combines a and b into a new tree [a,b] without reducing it.
//
// Join takes ownership of both operands: their nodes move into the result
// and a and b are marked consumed, so any later use of them panics with
// ErrConsumed. Clone an operand first if it is still needed.
func Join(a, b *Tree) *Tree {
	if a == b {
		panic("snailfish: a tree cannot be added to itself")
	}
	ar, br := a.Root(), b.Root()
	if ar == None || br == None {
		panic("snailfish: cannot add an empty tree")
	}

	t := &Tree{
		nodes: make([]node, 0, a.Len()+b.Len()+1),
		root:  None,
	}
	l := t.graft(a, ar)
	r := t.graft(b, br)
	t.root = t.Pair(l, r)

	a.consume()
	b.consume()
	return t
}

// Add returns the reduced sum of a and b. Like Join, it consumes both
// operands.
func Add(a, b *Tree, opts ...ReduceOption) *Tree {
	t := Join(a, b)
	t.Reduce(opts...)
	return t
}

func (t *Tree) consume() {
	t.nodes = nil
	t.free = nil
	t.root = None
	t.consumed = true
}

// Consumed reports whether t was handed to Join or Add.
func (t *Tree) Consumed() bool {
	return t.consumed
}
