// Package Trees implements BSTree, an unbalanced binary search tree whose
// nodes live in an index-addressed arena and keep a link to their parent.
//
// Nodes are identified by indexes instead of pointers: children are owned
// through the l and r indexes, the parent index is a plain back reference.
// Every slot carries a generation, which lets a Cursor detect that the node it
// referenced was erased even after the slot has been reused.
//
// Comparators are three-way functions as in cmp.Compare. FromLess and FromGods
// adapt the two other common shapes.
package Trees

import (
	"github.com/emirpasic/gods/utils"
)

// FromLess adapts a strict weak order to a three-way comparator. Keys where
// neither is less than the other compare as 0, the tree treats them as the
// same key.
func FromLess[K any](less func(K, K) bool) func(K, K) int {
	return func(a, b K) int {
		if less(a, b) {
			return -1
		} else if less(b, a) {
			return 1
		}
		return 0
	}
}

// FromGods adapts a comparator written for github.com/emirpasic/gods
// containers, e.g. utils.IntComparator.
func FromGods[K any](c utils.Comparator) func(K, K) int {
	return func(a, b K) int {
		return c(a, b)
	}
}
