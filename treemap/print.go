// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree to w
//
// the tree is drawn sideways: right sub-trees above, left below.  Each
// node shows its key and the key of its parent.  Returns the depth of
// the tree.
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	if nil == tree.dummy.left {
		fmt.Fprintf(w, "(empty)\n")
		return 0
	}
	return tree.printTree(w, tree.dummy.left, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[K, V]) printTree(w io.Writer, p *node[K, V], prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%s\n", p.key, p.value, tree.nodeName(p.up))
	} else {
		fmt.Fprintf(w, "%v ^%s\n", p.key, tree.nodeName(p.up))
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
