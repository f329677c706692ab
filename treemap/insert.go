// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"github.com/bitmark-inc/treemap/fault"
)

// Put - insert a new key or overwrite the value of an existing one
//
// returns the previous value and true if the key was already present.
// Overwriting is not a structural change and leaves live iterators
// valid.  A nil key, or a key the comparator cannot order against the
// existing keys, is rejected before anything is changed.
func (tree *Tree[K, V]) Put(key K, value V) (previous V, replaced bool, err error) {
	if isNil(key) {
		return previous, false, fault.ErrNilKey
	}

	tree.assertWellFormed("Put start")

	defer func() {
		if r := recover(); nil != r {
			if !isComparisonFailure(r) {
				panic(r)
			}
			var zero V
			previous, replaced, err = zero, false, fault.ErrNotComparable
		}
	}()

	up := tree.dummy
	p := tree.dummy.left
	toLeft := true
	for nil != p {
		c := tree.compare(key, p.key)
		if 0 == c {
			previous = p.value
			p.value = value
			return previous, true, nil
		}
		up = p
		if c < 0 {
			p = p.left
			toLeft = true
		} else {
			p = p.right
			toLeft = false
		}
	}

	// all comparisons are done, nothing below can fail
	q := &node[K, V]{
		key:   key,
		value: value,
		up:    up,
	}
	if toLeft {
		up.left = q
	} else {
		up.right = q
	}
	tree.count += 1
	tree.version += 1

	tree.assertWellFormed("Put end")
	return previous, false, nil
}
