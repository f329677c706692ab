// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

// Tree - type to hold the sentinel node of a tree
type Tree[K any, V any] struct {
	compare  Comparator[K]
	dummy    *node[K, V] // sentinel: left is the root, all else empty
	count    int
	version  uint64 // incremented on every structural change
	reporter Reporter
}

// New - create an initially empty tree ordered by compare
//
// a nil compare selects the natural ordering of the keys, see
// NewNatural
func New[K any, V any](compare Comparator[K]) *Tree[K, V] {
	if nil == compare {
		compare = naturalCompare[K]
	}
	tree := &Tree[K, V]{
		compare:  compare,
		dummy:    &node[K, V]{},
		count:    0,
		version:  0,
		reporter: defaultReporter,
	}
	tree.assertWellFormed("New")
	return tree
}

// NewNatural - create an initially empty tree ordered by the keys
// themselves
//
// keys implementing Item use their Compare method; strings and numeric
// kinds use the built-in ordering.  Keys that cannot be compared cause
// the first comparison to fail.
func NewNatural[K any, V any]() *Tree[K, V] {
	return New[K, V](nil)
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.dummy.left
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Size - same as Count
func (tree *Tree[K, V]) Size() int {
	return tree.count
}

// Depth - number of levels from the root to the deepest node
func (tree *Tree[K, V]) Depth() int {
	return tree.dummy.left.depth()
}

// Clear - remove every item
//
// this is a single structural change, so it stales any live iterator
func (tree *Tree[K, V]) Clear() {
	tree.assertWellFormed("Clear start")

	tree.dummy.left = nil
	tree.count = 0
	tree.version += 1

	tree.assertWellFormed("Clear end")
}
