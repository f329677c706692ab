// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treemap - an ordered key/value map held in a plain binary
// search tree with the addition of parent pointers to allow iteration
// through the nodes without an auxiliary stack
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree is not balanced; inserting keys in sorted order produces a
// linear chain and every operation is then O(n).
//
// The root hangs from the left link of a permanent sentinel node, so
// the root has a parent like every other node and an iterator that
// has run off the end simply points at the sentinel.
//
// Inserting an existing key overwrites the value in place and is not
// a structural change.  Delete does not copy keys or values between
// nodes: for a node with two children the in-order successor node is
// moved into its place, so an iterator positioned on that successor
// stays valid when the iterator itself removes the previous item.
//
// Iterators are fail-fast: any insert of a new key, delete or clear
// made other than through the iterator's own Remove makes the
// iterator return fault.ErrStaleIterator.
package treemap
