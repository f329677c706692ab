// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"iter"
)

// First - return the entry with the lowest key
func (tree *Tree[K, V]) First() (Entry[K, V], bool) {
	p := tree.dummy.left.first()
	if nil == p {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{Key: p.key, Value: p.value}, true
}

// Last - return the entry with the highest key
func (tree *Tree[K, V]) Last() (Entry[K, V], bool) {
	p := tree.dummy.left.last()
	if nil == p {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{Key: p.key, Value: p.value}, true
}

// All - range over the items in ascending key order
//
// the tree must not be structurally changed during the loop; use an
// Iterator to remove items while traversing
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.dummy.left.first(); nil != p && p != tree.dummy; p = p.next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Entries - copy of all items in ascending key order
func (tree *Tree[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, tree.count)
	for k, v := range tree.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// Keys - copy of all keys in ascending order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for k := range tree.All() {
		keys = append(keys, k)
	}
	return keys
}
