package snailfish

import "iter"

// Leaves yields the leaves of the tree from left to right. Each range over
// the returned sequence starts a fresh walk.
func (t *Tree) Leaves() iter.Seq[NodeID] {
	return t.LeavesOf(t.Root(), false)
}

// Backward yields the leaves of the tree from right to left.
func (t *Tree) Backward() iter.Seq[NodeID] {
	return t.LeavesOf(t.Root(), true)
}

// LeavesOf yields the leaves of the subtree rooted at id, right to left
// when reverse is set. The walk uses an explicit stack, so deep trees do
// not grow the goroutine stack.
//
// The tree must not be modified while the sequence is being ranged over.
func (t *Tree) LeavesOf(id NodeID, reverse bool) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if id == None {
			return
		}
		stack := []NodeID{id}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := t.at(cur)
			if n.left == None {
				if !yield(cur) {
					return
				}
				continue
			}
			// The side visited first goes on top.
			if reverse {
				stack = append(stack, n.left, n.right)
			} else {
				stack = append(stack, n.right, n.left)
			}
		}
	}
}

// Leftmost returns the first leaf of the subtree rooted at id.
func (t *Tree) Leftmost(id NodeID) NodeID {
	for !t.IsLeaf(id) {
		id = t.nodes[id].left
	}
	return id
}

// Rightmost returns the last leaf of the subtree rooted at id.
func (t *Tree) Rightmost(id NodeID) NodeID {
	for !t.IsLeaf(id) {
		id = t.nodes[id].right
	}
	return id
}

// NextLeft returns the nearest leaf to the left of id's subtree, or None
// when id's subtree starts the tree.
//
// It climbs while the current node is a left child; at the first ancestor
// reached from its right child it descends the left sibling, always
// taking the right branch.
func (t *Tree) NextLeft(id NodeID) NodeID {
	cur := id
	for {
		p := t.at(cur).parent
		if p == None {
			return None
		}
		if t.nodes[p].right == cur {
			return t.Rightmost(t.nodes[p].left)
		}
		cur = p
	}
}

// NextRight returns the nearest leaf to the right of id's subtree, or None
// when id's subtree ends the tree.
func (t *Tree) NextRight(id NodeID) NodeID {
	cur := id
	for {
		p := t.at(cur).parent
		if p == None {
			return None
		}
		if t.nodes[p].left == cur {
			return t.Leftmost(t.nodes[p].right)
		}
		cur = p
	}
}
