// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"fmt"

	"github.com/bitmark-inc/treemap/fault"
)

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/treemap/treemap Reporter

// Reporter - receives the description of an invariant violation
type Reporter interface {
	Report(message string)
}

// ReporterFunc - adapt a plain function to a Reporter
type ReporterFunc func(message string)

// Report - call f(message)
func (f ReporterFunc) Report(message string) {
	f(message)
}

// by default violations go to the PANIC channel, or stderr if there
// is no logger
var defaultReporter Reporter = ReporterFunc(func(message string) {
	fault.Criticalf("invariant error: %s", message)
})

// SetReporter - direct invariant violations to r, nil restores the
// default
func (tree *Tree[K, V]) SetReporter(r Reporter) {
	if nil == r {
		r = defaultReporter
	}
	tree.reporter = r
}

func (tree *Tree[K, V]) report(format string, arguments ...interface{}) bool {
	r := tree.reporter
	if nil == r {
		r = defaultReporter
	}
	r.Report(fmt.Sprintf(format, arguments...))
	return false
}

// WellFormed - check the structure of the tree
//
// verifies the comparator and sentinel, that every node has the right
// parent, a non-nil key and a key strictly inside the range implied by
// its ancestors, and that the count matches the nodes reachable from
// the root.  Only the first problem is reported.
func (tree *Tree[K, V]) WellFormed() (ok bool) {
	if nil == tree.compare {
		return tree.report("comparator is nil")
	}
	if nil == tree.dummy {
		return tree.report("sentinel is nil")
	}
	if !isZero(tree.dummy.key) || nil != tree.dummy.right || nil != tree.dummy.up {
		return tree.report("sentinel has a key, right sub-tree or parent")
	}

	defer func() {
		if r := recover(); nil != r {
			if !isComparisonFailure(r) {
				panic(r)
			}
			ok = tree.report("keys are not mutually comparable")
		}
	}()

	if !tree.checkInRange(tree.dummy.left, tree.dummy, nil, nil) {
		return false // already reported
	}

	if n := tree.dummy.left.count(); n != tree.count {
		return tree.report("count: %d but %d nodes are reachable", tree.count, n)
	}
	return true
}

// internal: consistency checker
//
// every node in the sub-tree p must have the correct parent, a key
// that is not nil and lies strictly between lower and upper; a nil
// bound is unlimited
func (tree *Tree[K, V]) checkInRange(p *node[K, V], up *node[K, V], lower *K, upper *K) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		if nil == p.up {
			return tree.report("node: %v has no parent, expected: %s", p.key, tree.nodeName(up))
		}
		return tree.report("node: %v parent: %s expected: %s", p.key, tree.nodeName(p.up), tree.nodeName(up))
	}
	if isNil(p.key) {
		return tree.report("nil key below: %s", tree.nodeName(up))
	}
	if nil != lower && tree.compare(*lower, p.key) >= 0 {
		return tree.report("node: %v not above lower bound: %v", p.key, *lower)
	}
	if nil != upper && tree.compare(*upper, p.key) <= 0 {
		return tree.report("node: %v not below upper bound: %v", p.key, *upper)
	}
	if !tree.checkInRange(p.left, p, lower, &p.key) {
		return false
	}
	return tree.checkInRange(p.right, p, &p.key, upper)
}

func (tree *Tree[K, V]) nodeName(p *node[K, V]) string {
	switch p {
	case nil:
		return "nil"
	case tree.dummy:
		return "sentinel"
	}
	return fmt.Sprintf("%v", p.key)
}
