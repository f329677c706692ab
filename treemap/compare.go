// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap

import (
	"math"
	"reflect"
	"runtime"
	"strings"

	"github.com/bitmark-inc/treemap/fault"
)

// Comparator - total order over keys
//
// returns negative if a < b, zero if a == b and positive if a > b
type Comparator[K any] func(a, b K) int

// Item - a key type providing its own natural ordering
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// natural ordering: Item.Compare, else the built-in order of strings
// and numeric kinds; anything else panics with fault.ErrNotComparable
// on the first comparison
func naturalCompare[K any](a K, b K) int {
	x := interface{}(a)
	y := interface{}(b)

	if i, ok := x.(Item); ok {
		return i.Compare(y)
	}

	va := reflect.ValueOf(x)
	vb := reflect.ValueOf(y)
	if !va.IsValid() || !vb.IsValid() || va.Kind() != vb.Kind() {
		panic(fault.ErrNotComparable)
	}

	switch va.Kind() {
	case reflect.String:
		return strings.Compare(va.String(), vb.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sign(va.Int() < vb.Int(), va.Int() > vb.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return sign(va.Uint() < vb.Uint(), va.Uint() > vb.Uint())

	case reflect.Float32, reflect.Float64:
		return compareFloat(va.Float(), vb.Float())

	default:
		panic(fault.ErrNotComparable)
	}
}

func sign(less bool, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return +1
	default:
		return 0
	}
}

// NaN equals itself and sorts above every other value so that the
// order stays total
func compareFloat(a float64, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return sign(math.IsNaN(b) && !math.IsNaN(a), math.IsNaN(a) && !math.IsNaN(b))
}

// true if a recovered panic value is a comparison between keys of
// unrelated types, i.e. a natural ordering failure or an Item.Compare
// that type asserted its argument
func isComparisonFailure(r interface{}) bool {
	if err, ok := r.(error); ok {
		if err == fault.ErrNotComparable {
			return true
		}
		if _, ok := err.(*runtime.TypeAssertionError); ok {
			return true
		}
	}
	return false
}

// keys of pointer like kinds can be nil; this includes a nil
// interface for trees keyed by interface types
func isNil[K any](key K) bool {
	v := reflect.ValueOf(interface{}(key))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func isZero[K any](key K) bool {
	return reflect.ValueOf(&key).Elem().IsZero()
}
