package snailfish

// Magnitude returns the magnitude of the whole tree, or 0 if it is empty.
func (t *Tree) Magnitude() int {
	if t.Root() == None {
		return 0
	}
	return t.MagnitudeOf(t.root)
}

// MagnitudeOf returns the magnitude of the subtree rooted at id: a leaf's
// value, or three times the left magnitude plus twice the right.
func (t *Tree) MagnitudeOf(id NodeID) int {
	n := t.at(id)
	if n.left == None {
		return n.value
	}
	return 3*t.MagnitudeOf(n.left) + 2*t.MagnitudeOf(n.right)
}
