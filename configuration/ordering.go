// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/treemap"
)

// names of the supported string key orderings
const (
	OrderingLexical = "lexical"
	OrderingNumeric = "numeric"
	OrderingReverse = "reverse"
)

// Comparator - the string key ordering selected by name
//
// an empty name is lexical
func Comparator(name string) (treemap.Comparator[string], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", OrderingLexical:
		return strings.Compare, nil
	case OrderingNumeric:
		return numericCompare, nil
	case OrderingReverse:
		return func(a, b string) int {
			return strings.Compare(b, a)
		}, nil
	default:
		return nil, fault.ErrInvalidOrdering
	}
}

// integers in numeric order before everything else in lexical order;
// equal values with different spelling ("7", "007") fall back to
// lexical so that the order stays total
func numericCompare(a, b string) int {
	x, errA := strconv.ParseInt(a, 10, 64)
	y, errB := strconv.ParseInt(b, 10, 64)

	switch {
	case nil == errA && nil == errB:
		if x < y {
			return -1
		}
		if x > y {
			return +1
		}
		return strings.Compare(a, b)
	case nil == errA:
		return -1
	case nil == errB:
		return +1
	default:
		return strings.Compare(a, b)
	}
}
