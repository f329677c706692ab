// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

// internal: find the node holding key or nil
//
// nil keys and keys that the comparator rejects as incomparable are
// simply not present; any other panic from the comparator is passed on
func (tree *Tree[K, V]) findKey(key K) (found *node[K, V]) {
	if isNil(key) {
		return nil
	}
	defer func() {
		if r := recover(); nil != r {
			if !isComparisonFailure(r) {
				panic(r)
			}
			found = nil
		}
	}()
	return tree.search(key)
}

// internal: descend from the root without recovering comparator panics
func (tree *Tree[K, V]) search(key K) *node[K, V] {
	p := tree.dummy.left
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c > 0: // key > p.key
			p = p.right
		case c < 0: // key < p.key
			p = p.left
		default:
			return p
		}
	}
	return nil
}

// internal: convert an arbitrary probe to a key of this tree
//
// rejects values of the wrong dynamic type and nil, then tries a
// comparison against the root in both directions so that a key the
// comparator cannot handle is seen as absent here rather than deep in
// a search
func (tree *Tree[K, V]) asKey(x interface{}) (key K, ok bool) {
	key, ok = x.(K)
	if !ok || isNil(key) {
		return key, false
	}

	root := tree.dummy.left
	if nil == root {
		return key, true
	}

	defer func() {
		if r := recover(); nil != r {
			if !isComparisonFailure(r) {
				panic(r)
			}
			ok = false
		}
	}()
	tree.compare(root.key, key)
	tree.compare(key, root.key)
	return key, true
}
