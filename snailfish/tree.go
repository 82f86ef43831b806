package snailfish

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NodeID addresses a node inside its Tree.
type NodeID int32

// None is the NodeID of a missing node: the root's parent, the children of
// a leaf, an absent neighbour.
const None NodeID = -1

// ErrConsumed is the panic value raised when a tree is used after Add
// took ownership of it.
var ErrConsumed = errors.New("snailfish: tree was consumed by Add")

type node struct {
	parent NodeID
	left   NodeID // None for leaves
	right  NodeID // None for leaves
	value  int    // only meaningful for leaves
}

// Tree is a snailfish number: a binary tree of pairs with integer leaves,
// stored in an arena. Nodes refer to each other by NodeID, and every
// non-root node knows its parent.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	nodes    []node
	free     []NodeID
	root     NodeID
	consumed bool
}

// New returns an empty tree. Build it with Leaf, Pair and SetRoot.
func New() *Tree {
	return &Tree{root: None}
}

func (t *Tree) at(id NodeID) *node {
	if t.consumed {
		panic(ErrConsumed)
	}
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("snailfish: node %d out of range", id))
	}
	return &t.nodes[id]
}

func (t *Tree) alloc(n node) NodeID {
	if t.consumed {
		panic(ErrConsumed)
	}
	if k := len(t.free); k > 0 {
		id := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) release(id NodeID) {
	t.nodes[id] = node{parent: None, left: None, right: None}
	t.free = append(t.free, id)
}

// Leaf adds a detached leaf holding v.
func (t *Tree) Leaf(v int) NodeID {
	if v < 0 {
		panic(fmt.Sprintf("snailfish: negative leaf value %d", v))
	}
	return t.alloc(node{parent: None, left: None, right: None, value: v})
}

// Pair adds a detached pair whose children are l and r. Both children must
// be detached: neither may already have a parent or be the root.
func (t *Tree) Pair(l, r NodeID) NodeID {
	if l == r {
		panic("snailfish: pair children must be distinct nodes")
	}
	for _, c := range []NodeID{l, r} {
		if t.at(c).parent != None || c == t.root {
			panic(fmt.Sprintf("snailfish: node %d is already attached", c))
		}
	}
	id := t.alloc(node{parent: None, left: l, right: r})
	t.nodes[l].parent = id
	t.nodes[r].parent = id
	return id
}

// SetRoot makes the detached node id the root of the tree.
func (t *Tree) SetRoot(id NodeID) {
	if t.at(id).parent != None {
		panic(fmt.Sprintf("snailfish: node %d has a parent and cannot be the root", id))
	}
	t.root = id
}

// Root returns the root node, or None for an empty tree.
func (t *Tree) Root() NodeID {
	if t.consumed {
		panic(ErrConsumed)
	}
	return t.root
}

func (t *Tree) IsLeaf(id NodeID) bool {
	return t.at(id).left == None
}

// Value returns the value of a leaf. It panics on pairs.
func (t *Tree) Value(id NodeID) int {
	n := t.at(id)
	if n.left != None {
		panic(fmt.Sprintf("snailfish: node %d is a pair and has no value", id))
	}
	return n.value
}

func (t *Tree) Left(id NodeID) NodeID   { return t.at(id).left }
func (t *Tree) Right(id NodeID) NodeID  { return t.at(id).right }
func (t *Tree) Parent(id NodeID) NodeID { return t.at(id).parent }

// Depth returns the number of ancestors of id. The root has depth 0.
func (t *Tree) Depth(id NodeID) int {
	d := 0
	for p := t.at(id).parent; p != None; p = t.nodes[p].parent {
		d++
	}
	return d
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	if t.consumed {
		panic(ErrConsumed)
	}
	return len(t.nodes) - len(t.free)
}

// Clone returns a deep copy of t. The copy shares nothing with t, so either
// may be handed to Add without affecting the other.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		nodes: make([]node, 0, t.Len()),
		root:  None,
	}
	if t.root != None {
		c.root = c.graft(t, t.root)
	}
	return c
}

// graft copies the subtree of src rooted at id into t and returns the id
// of the detached copy.
func (t *Tree) graft(src *Tree, id NodeID) NodeID {
	n := src.at(id)
	if n.left == None {
		return t.Leaf(n.value)
	}
	l := t.graft(src, n.left)
	r := t.graft(src, n.right)
	return t.Pair(l, r)
}

// String renders the tree in its literal form, "[l,r]" for pairs.
func (t *Tree) String() string {
	if t.consumed {
		return "<consumed>"
	}
	if t.root == None {
		return ""
	}
	return t.Format(t.root)
}

// Format renders the subtree rooted at id.
func (t *Tree) Format(id NodeID) string {
	var sb strings.Builder

	var write func(id NodeID)
	write = func(id NodeID) {
		n := t.at(id)
		if n.left == None {
			sb.WriteString(strconv.Itoa(n.value))
			return
		}
		sb.WriteByte('[')
		write(n.left)
		sb.WriteByte(',')
		write(n.right)
		sb.WriteByte(']')
	}

	write(id)
	return sb.String()
}
