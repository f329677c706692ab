// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

// a node in the tree
type node[K any, V any] struct {
	left  *node[K, V] // left sub-tree
	right *node[K, V] // right sub-tree
	up    *node[K, V] // points to parent node, the sentinel for the root
	key   K           // key part for ordering
	value V           // value part for data storage
}

// Entry - a key/value pair copied out of the tree
type Entry[K any, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// internal: lowest node in a sub-tree
func (p *node[K, V]) first() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[K, V]) last() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: the node with the next highest key
//
// climbs while arriving from a right child; the first ancestor reached
// from a left child is the successor.  The root hangs from the
// sentinel's left link, so the rightmost node yields the sentinel.
func (p *node[K, V]) next() *node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up && p.up.right == p {
		p = p.up
	}
	return p.up
}

// internal: put r into the slot p occupies under its parent
func (p *node[K, V]) replaceWith(r *node[K, V]) {
	up := p.up
	if up.left == p {
		up.left = r
	} else {
		up.right = r
	}
	if nil != r {
		r.up = up
	}
}

// internal: number of nodes in a sub-tree
func (p *node[K, V]) count() int {
	if nil == p {
		return 0
	}
	return 1 + p.left.count() + p.right.count()
}

// internal: number of levels in a sub-tree
func (p *node[K, V]) depth() int {
	if nil == p {
		return 0
	}
	ld := p.left.depth()
	rd := p.right.depth()
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
