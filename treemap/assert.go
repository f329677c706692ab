// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/internal/invariants"
)

// only active when built with the invariants tag: the check walks the
// whole tree
func (tree *Tree[K, V]) assertWellFormed(operation string) {
	if !invariants.Enabled {
		return
	}
	if !tree.WellFormed() {
		fault.Panicf("treemap: %s: %v", operation, fault.ErrCorruptTree)
	}
}

func (it *Iterator[K, V]) assertWellFormed(operation string) {
	if !invariants.Enabled {
		return
	}
	if !it.wellFormed() {
		fault.Panicf("treemap: iterator: %s: %v", operation, fault.ErrCorruptTree)
	}
}
