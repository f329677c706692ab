// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treemap_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/treemap"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

// a tree whose invariant failures end the test
func newTestTree(t *testing.T) *treemap.Tree[stringItem, string] {
	tree := treemap.NewNatural[stringItem, string]()
	tree.SetReporter(treemap.ReporterFunc(func(message string) {
		t.Errorf("invariant: %s", message)
	}))
	return tree
}

func checkTree(t *testing.T, tree *treemap.Tree[stringItem, string], stage string) {
	if !tree.WellFormed() {
		var s strings.Builder
		depth := tree.Print(&s, true)
		t.Logf("depth: %d\n%s", depth, s.String())
		t.Fatalf("%s: inconsistent tree", stage)
	}
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// sorted input degenerates into a chain, which must still work
func TestListSorted(t *testing.T) {
	addList := make([]stringItem, 0, 200)
	for i := 0; i < cap(addList); i += 1 {
		addList = append(addList, stringItem{fmt.Sprintf("%04d", i)})
	}
	doList(t, addList)
	doTraverse(t, addList)

	tree := newTestTree(t)
	for _, key := range addList {
		_, _, err := tree.Put(key, "data:"+key.String())
		require.NoError(t, err, "put")
	}
	assert.Equal(t, len(addList), tree.Depth(), "sorted insert should give a chain")
}

func TestListRandom(t *testing.T) {
	addList := make([]stringItem, 500)
	for i := range addList {
		addList[i] = makeKey()
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[stringItem]struct{})

		tree := newTestTree(t)
		for _, key := range addList {
			if _, _, err := tree.Put(key, "data:"+key.String()); nil != err {
				t.Fatalf("put: %q  error: %s", key, err)
			}
		}

		checkTree(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Remove(key)
			ev := "data:" + key.String()
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}

		checkTree(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Remove(key)
			ev := "data:" + key.String()
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}
		if !tree.IsEmpty() {
			checkTree(t, tree, "remainder")
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

// traverse the tree with an iterator and with range
func doTraverse(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := newTestTree(t)
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree.Put(key, "data:"+key.String())
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Count())
	}

	it := tree.Iterator()
	n := 0
	for i := 0; it.HasNext(); i += 1 {
		key, value, err := it.Next()
		if nil != err {
			t.Fatalf("next error: %s", err)
		}
		if expected[i] != key.String() {
			t.Fatalf("next item: actual: %q  expected: %q", key, expected[i])
		}
		if "data:"+expected[i] != value {
			t.Fatalf("next value: actual: %q  expected: %q", value, "data:"+expected[i])
		}
		n += 1
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	n = 0
	for key := range tree.All() {
		if expected[n] != key.String() {
			t.Fatalf("range item: actual: %q  expected: %q", key, expected[n])
		}
		n += 1
	}
	if n != len(expected) {
		t.Fatalf("range count: actual: %d  expected: %d", n, len(expected))
	}

	first, ok := tree.First()
	require.True(t, ok, "no first item")
	assert.Equal(t, expected[0], first.Key.String(), "first")

	last, ok := tree.Last()
	require.True(t, ok, "no last item")
	assert.Equal(t, expected[len(expected)-1], last.Key.String(), "last")

	// delete remainder
	for _, key := range expected {
		tree.Remove(stringItem{key})
	}

	if !tree.IsEmpty() {
		checkTree(t, tree, "remainder")
		t.Fatalf("remaining nodes")
	}
}

func makeKey() stringItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return stringItem{fmt.Sprintf("%04d", n%10000)}
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := newTestTree(t)
	d := make([]stringItem, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Put(key, "data:"+key.String())
	}

	checkTree(t, tree, "insert")

	for _, key := range d {
		tree.Remove(key)
		if tree.ContainsKey(key) {
			t.Fatalf("key: %q still present after delete", key)
		}
	}

	checkTree(t, tree, "delete")

	// add back the test value, not a four digit key so always new
	testKey := stringItem{"500"}
	const testValue = "just testing data: test 500 value"
	_, replaced, err := tree.Put(testKey, testValue)
	require.NoError(t, err, "put")
	require.False(t, replaced, "test key was already present")

	checkTree(t, tree, "test value")

	tv, ok := tree.Get(testKey)
	if !ok {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testValue != tv {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv, testValue)
	}

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	value, ok := tree.Remove(testKey)
	if !ok || value != testValue {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testValue)
	}
	if tree.ContainsKey(testKey) {
		t.Fatalf("test key not deleted")
	}
}

func TestPutGetRemove(t *testing.T) {
	tree := treemap.NewNatural[int, string]()

	previous, replaced, err := tree.Put(5, "five")
	require.NoError(t, err, "put")
	assert.False(t, replaced, "new key reported as replaced")
	assert.Equal(t, "", previous, "previous of new key")
	assert.Equal(t, 1, tree.Size(), "size after new key")

	previous, replaced, err = tree.Put(5, "FIVE")
	require.NoError(t, err, "put")
	assert.True(t, replaced, "existing key not replaced")
	assert.Equal(t, "five", previous, "previous value")
	assert.Equal(t, 1, tree.Size(), "size after overwrite")

	v, ok := tree.Get(5)
	assert.True(t, ok, "get")
	assert.Equal(t, "FIVE", v, "get value")

	v, ok = tree.Remove(7)
	assert.False(t, ok, "remove absent key")
	assert.Equal(t, "", v, "remove absent value")
	assert.Equal(t, 1, tree.Size(), "size after absent remove")

	v, ok = tree.Remove(5)
	assert.True(t, ok, "remove present key")
	assert.Equal(t, "FIVE", v, "removed value")
	assert.False(t, tree.ContainsKey(5), "key still present")
	assert.Equal(t, 0, tree.Size(), "size after remove")
	assert.True(t, tree.IsEmpty(), "tree not empty")
}

func TestNilKey(t *testing.T) {
	tree := treemap.New[*int, string](func(a, b *int) int {
		return *a - *b
	})
	one := 1
	_, _, err := tree.Put(&one, "one")
	require.NoError(t, err, "put")

	_, _, err = tree.Put(nil, "nil")
	assert.Equal(t, fault.ErrNilKey, err, "nil key accepted")
	assert.True(t, fault.IsErrInvalid(err), "nil key error class")
	assert.Equal(t, 1, tree.Count(), "count changed by nil key")

	assert.False(t, tree.ContainsKey(nil), "nil key found")
	_, ok := tree.Get(nil)
	assert.False(t, ok, "nil key get")
	_, ok = tree.Remove(nil)
	assert.False(t, ok, "nil key removed")
	assert.True(t, tree.WellFormed(), "tree damaged")
}

func TestClearTwice(t *testing.T) {
	tree := newTestTree(t)
	for _, k := range []string{"b", "a", "c"} {
		tree.Put(stringItem{k}, k)
	}

	tree.Clear()
	assert.Equal(t, 0, tree.Count(), "count after first clear")
	assert.False(t, tree.Iterator().HasNext(), "items after first clear")
	checkTree(t, tree, "first clear")

	tree.Clear()
	assert.Equal(t, 0, tree.Count(), "count after second clear")
	assert.False(t, tree.Iterator().HasNext(), "items after second clear")
	checkTree(t, tree, "second clear")

	_, ok := tree.First()
	assert.False(t, ok, "first of empty tree")
	_, ok = tree.Last()
	assert.False(t, ok, "last of empty tree")
}

// root 5, left 2 with right child 3, right 8 with left child 6
func TestTwoChildDeletion(t *testing.T) {
	tree := treemap.NewNatural[int, string]()
	reported := []string{}
	tree.SetReporter(treemap.ReporterFunc(func(message string) {
		reported = append(reported, message)
	}))

	for _, k := range []int{5, 2, 8, 3, 6} {
		tree.Put(k, fmt.Sprintf("v%d", k))
	}
	require.Equal(t, []int{2, 3, 5, 6, 8}, tree.Keys(), "initial order")

	v, ok := tree.Remove(5)
	assert.True(t, ok, "remove root")
	assert.Equal(t, "v5", v, "removed value")
	assert.Equal(t, []int{2, 3, 6, 8}, tree.Keys(), "order after remove")
	assert.True(t, tree.WellFormed(), "tree not well formed")
	assert.Empty(t, reported, "violations reported")

	// successor 6 has taken the root position
	var s strings.Builder
	tree.Print(&s, false)
	assert.Contains(t, s.String(), "|------+ 6 ^sentinel", "successor is not the root")
}

func TestOverwriteKeepsIterator(t *testing.T) {
	tree := treemap.NewNatural[string, int]()
	for i, k := range []string{"m", "c", "x"} {
		tree.Put(k, i)
	}

	it := tree.Iterator()
	k, _, err := it.Next()
	require.NoError(t, err, "next")
	assert.Equal(t, "c", k, "first key")

	// value update is not structural
	_, replaced, err := tree.Put("x", 99)
	require.NoError(t, err, "overwrite")
	require.True(t, replaced, "overwrite")

	k, _, err = it.Next()
	require.NoError(t, err, "next after overwrite")
	assert.Equal(t, "m", k, "second key")

	k, v, err := it.Next()
	require.NoError(t, err, "next after overwrite")
	assert.Equal(t, "x", k, "third key")
	assert.Equal(t, 99, v, "overwritten value")
}

func TestPrint(t *testing.T) {
	tree := treemap.NewNatural[int, string]()

	var s strings.Builder
	assert.Equal(t, 0, tree.Print(&s, false), "empty depth")
	assert.Equal(t, "(empty)\n", s.String(), "empty print")

	for _, k := range []int{5, 2, 8} {
		tree.Put(k, fmt.Sprintf("v%d", k))
	}

	s.Reset()
	depth := tree.Print(&s, true)
	assert.Equal(t, 2, depth, "depth")
	assert.Equal(t, 2, tree.Depth(), "Depth")
	expected := "       /------+ 8 → v8 ^5\n" +
		"|------+ 5 → v5 ^sentinel\n" +
		"       \\------+ 2 → v2 ^5\n"
	assert.Equal(t, expected, s.String(), "print")
}

func TestEntries(t *testing.T) {
	tree := treemap.NewNatural[string, int]()
	for i, k := range []string{"delta", "alpha", "charlie", "bravo"} {
		tree.Put(k, i)
	}

	expected := []treemap.Entry[string, int]{
		{Key: "alpha", Value: 1},
		{Key: "bravo", Value: 3},
		{Key: "charlie", Value: 2},
		{Key: "delta", Value: 0},
	}
	assert.Equal(t, expected, tree.Entries(), "entries")

	// early break from range
	n := 0
	for range tree.All() {
		n += 1
		if 2 == n {
			break
		}
	}
	assert.Equal(t, 2, n, "range did not stop")
}
