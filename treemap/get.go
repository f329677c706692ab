// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

// ContainsKey - true if key is present
func (tree *Tree[K, V]) ContainsKey(key K) bool {
	return nil != tree.findKey(key)
}

// Get - fetch the value stored under key
//
// the boolean is false, and the value is the zero value, if key is
// not present
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	p := tree.findKey(key)
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

// ContainsAny - as ContainsKey but accepts a value of any type
//
// values that are nil, of some other type or not comparable with the
// keys in the tree are reported as absent
func (tree *Tree[K, V]) ContainsAny(x interface{}) bool {
	key, ok := tree.asKey(x)
	if !ok {
		return false
	}
	return tree.ContainsKey(key)
}

// GetAny - as Get but accepts a value of any type
func (tree *Tree[K, V]) GetAny(x interface{}) (V, bool) {
	key, ok := tree.asKey(x)
	if !ok {
		var zero V
		return zero, false
	}
	return tree.Get(key)
}
