// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"github.com/bitmark-inc/treemap/fault"
)

// Iterator - walks a tree in ascending key order
//
// current is the node last returned by Next (nil if there is nothing
// to remove) and next is the node Next will return, the tree sentinel
// when exhausted.
type Iterator[K any, V any] struct {
	tree    *Tree[K, V]
	current *node[K, V]
	next    *node[K, V]
	version uint64
}

// Iterator - create an iterator positioned before the lowest key
func (tree *Tree[K, V]) Iterator() *Iterator[K, V] {
	next := tree.dummy.left.first()
	if nil == next {
		next = tree.dummy
	}
	return &Iterator[K, V]{
		tree:    tree,
		current: nil,
		next:    next,
		version: tree.version,
	}
}

// HasNext - true if Next would return an item
func (it *Iterator[K, V]) HasNext() bool {
	return it.next != it.tree.dummy
}

// Next - return the next key and value
//
// fails with fault.ErrNoMoreItems when exhausted and with
// fault.ErrStaleIterator if the tree was structurally changed other
// than by this iterator's Remove
func (it *Iterator[K, V]) Next() (key K, value V, err error) {
	it.assertWellFormed("Next start")

	if !it.HasNext() {
		return key, value, fault.ErrNoMoreItems
	}
	if it.version != it.tree.version {
		return key, value, fault.ErrStaleIterator
	}

	it.current = it.next
	it.next = it.current.next()

	it.assertWellFormed("Next end")
	return it.current.key, it.current.value, nil
}

// Remove - delete the item last returned by Next
//
// can only be called once per Next.  The iterator stays valid: this
// is the one structural change that does not make it stale.
func (it *Iterator[K, V]) Remove() error {
	it.assertWellFormed("Remove start")

	if nil == it.current {
		return fault.ErrNoCurrentItem
	}
	if it.version != it.tree.version {
		return fault.ErrStaleIterator
	}

	// next was computed before the removal and the delete never moves
	// keys between nodes, so it still refers to the right item
	it.tree.Remove(it.current.key)

	it.current = nil
	it.version = it.tree.version

	it.assertWellFormed("Remove end")
	return nil
}

// internal: check the iterator against its tree
//
// the tree must be well formed.  While the iterator is not stale:
// current is nil or a node of the tree, next is a node of the tree or
// the sentinel, and a non-nil current is immediately before next.
func (it *Iterator[K, V]) wellFormed() bool {
	tree := it.tree
	if !tree.WellFormed() {
		return false // already reported
	}
	if it.version != tree.version {
		return true
	}

	if nil != it.current && (it.current == tree.dummy || tree.findKey(it.current.key) != it.current) {
		return tree.report("iterator: current: %s not in tree", tree.nodeName(it.current))
	}
	if nil == it.next {
		return tree.report("iterator: next is nil")
	}
	if it.next != tree.dummy && tree.findKey(it.next.key) != it.next {
		return tree.report("iterator: next: %s not in tree", tree.nodeName(it.next))
	}
	if nil != it.current && it.current.next() != it.next {
		return tree.report("iterator: current: %s is not before next: %s", tree.nodeName(it.current), tree.nodeName(it.next))
	}
	return true
}
