// Package snailfish implements snailfish numbers: nested pairs of
// single-digit literals that are added together and then reduced.
//
// # Representation
//
// A number is a Tree. Nodes live in an arena owned by the tree and refer to
// each other by NodeID; every non-root node records its parent, which is
// what lets an exploding pair find its neighbours without a full scan:
//
//	[[1,2],3]
//
//	      #4
//	     /  \
//	   #2    #3 (3)
//	  /  \
//	#0(1) #1(2)
//
// # Reduction
//
// After an addition the result is reduced by repeating the first rule that
// applies:
//
//  1. Explode: the leftmost pair nested inside four pairs adds its left
//     value to the nearest leaf on its left, its right value to the nearest
//     leaf on its right, and becomes 0.
//  2. Split: the leftmost leaf of 10 or more becomes a pair of its halves,
//     rounding down on the left and up on the right.
//
// # Ownership
//
// Join and Add take ownership of their operands and mark them consumed;
// touching a consumed tree panics with ErrConsumed. Call Clone to keep a
// copy:
//
//	sum := snailfish.Add(a.Clone(), b.Clone())
//	fmt.Println(sum, sum.Magnitude())
//
// Malformed input is reported as a *SyntaxError. Broken tree invariants
// (exploding a pair that does not hold two leaves, attaching a node twice)
// are programming errors and panic.
package snailfish
