// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

// Remove - removes a specific item from the tree
//
// returns the removed value and true, or the zero value and false if
// the key was not present (in which case nothing changes)
func (tree *Tree[K, V]) Remove(key K) (V, bool) {
	q := tree.findKey(key)
	if nil == q {
		var zero V
		return zero, false
	}

	tree.assertWellFormed("Remove start")

	tree.unlink(q)
	tree.count -= 1
	tree.version += 1

	tree.assertWellFormed("Remove end")

	value := q.value
	q.left = nil
	q.right = nil
	q.up = nil
	return value, true
}

// internal: detach q from the tree, re-linking its children
//
// with two children the in-order successor node itself is moved into
// q's position; keys and values never move between nodes
func (tree *Tree[K, V]) unlink(q *node[K, V]) {
	switch {
	case nil == q.left:
		q.replaceWith(q.right)

	case nil == q.right:
		q.replaceWith(q.left)

	default:
		// successor: leftmost of the right sub-tree, has no left child
		s := q.right.first()
		if s != q.right {
			s.replaceWith(s.right)
			s.right = q.right
			s.right.up = s
		}
		s.left = q.left
		s.left.up = s
		q.replaceWith(s)
	}
}
