// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/samber/lo"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/treemap"
)

// at most one progress line per interval
const progressInterval = time.Second

type parameters struct {
	Count   int
	Deletes int
	Seed    int64
	Check   bool
}

// Summary - result of one benchmark run
type Summary struct {
	Seed       int64  `json:"seed"`
	Inserted   int    `json:"inserted"`
	Duplicates int    `json:"duplicates"`
	Deleted    int    `json:"deleted"`
	Missing    int    `json:"missing"`
	Drained    int    `json:"drained"`
	MaxDepth   int    `json:"maxDepth"`
	Checks     int    `json:"checks"`
	Elapsed    string `json:"elapsed,omitempty"`
}

type bench struct {
	log      *logger.L
	limiter  *rate.Limiter
	verbose  bool
	check    bool
	tree     *treemap.Tree[string, int]
	expected map[string]int
	summary  Summary
}

// run the insert, delete and drain phases, verifying the tree against
// a plain map after each phase
func benchmark(log *logger.L, p parameters, verbose bool) (*Summary, error) {

	b := &bench{
		log:      log,
		limiter:  rate.NewLimiter(rate.Every(progressInterval), 1),
		verbose:  verbose,
		check:    p.Check,
		tree:     treemap.New[string, int](strings.Compare),
		expected: make(map[string]int, p.Count),
		summary: Summary{
			Seed: p.Seed,
		},
	}
	b.tree.SetReporter(treemap.ReporterFunc(func(message string) {
		log.Errorf("invariant: %s", message)
	}))

	r := rand.New(rand.NewSource(p.Seed))
	keys := make([]string, p.Count)
	for i := range keys {
		keys[i] = fmt.Sprintf("%04d", r.Intn(maximumCount))
	}

	if err := b.insert(keys); nil != err {
		return nil, err
	}
	if err := b.remove(keys[:p.Deletes]); nil != err {
		return nil, err
	}
	if err := b.drain(); nil != err {
		return nil, err
	}

	log.Infof("summary: %+v", b.summary)
	return &b.summary, nil
}

func (b *bench) insert(keys []string) error {
	for i, key := range keys {
		_, replaced, err := b.tree.Put(key, i)
		if nil != err {
			return err
		}
		if _, ok := b.expected[key]; ok != replaced {
			return fmt.Errorf("insert: key: %q replaced: %t: %w", key, replaced, fault.ErrCorruptTree)
		}
		if replaced {
			b.summary.Duplicates += 1
		} else {
			b.summary.Inserted += 1
		}
		b.expected[key] = i

		if err := b.verify("insert", i+1, len(keys)); nil != err {
			return err
		}
	}
	b.summary.MaxDepth = b.tree.Depth()
	return b.compare("insert")
}

func (b *bench) remove(keys []string) error {
	for i, key := range keys {
		value, ok := b.tree.Remove(key)
		expected, present := b.expected[key]
		if ok != present || value != expected {
			return fmt.Errorf("delete: key: %q removed: %t value: %d: %w", key, ok, value, fault.ErrCorruptTree)
		}
		if ok {
			b.summary.Deleted += 1
			delete(b.expected, key)
		} else {
			b.summary.Missing += 1
		}

		if err := b.verify("delete", i+1, len(keys)); nil != err {
			return err
		}
	}
	return b.compare("delete")
}

// remove everything through a single iterator
func (b *bench) drain() error {
	total := b.tree.Count()
	previous := ""
	it := b.tree.Iterator()
	for it.HasNext() {
		key, value, err := it.Next()
		if nil != err {
			return err
		}
		if b.summary.Drained > 0 && key <= previous {
			return fmt.Errorf("drain: key: %q after: %q: %w", key, previous, fault.ErrCorruptTree)
		}
		if expected, ok := b.expected[key]; !ok || value != expected {
			return fmt.Errorf("drain: key: %q value: %d: %w", key, value, fault.ErrCorruptTree)
		}
		if err := it.Remove(); nil != err {
			return err
		}
		delete(b.expected, key)
		previous = key
		b.summary.Drained += 1

		if err := b.verify("drain", b.summary.Drained, total); nil != err {
			return err
		}
	}
	if !b.tree.IsEmpty() || 0 != len(b.expected) {
		return fmt.Errorf("drain: %d keys left: %w", b.tree.Count(), fault.ErrCorruptTree)
	}
	return nil
}

// per mutation checks and progress
func (b *bench) verify(phase string, done int, total int) error {
	if b.tree.Count() != len(b.expected) {
		return fmt.Errorf("%s: count: %d expected: %d: %w", phase, b.tree.Count(), len(b.expected), fault.ErrCorruptTree)
	}
	if b.check {
		b.summary.Checks += 1
		if !b.tree.WellFormed() {
			return fmt.Errorf("%s: after %d: %w", phase, done, fault.ErrCorruptTree)
		}
	}
	if b.limiter.Allow() {
		b.log.Infof("%s: %d/%d  size: %d", phase, done, total, b.tree.Count())
		if b.verbose {
			fmt.Printf("%s: %d/%d\n", phase, done, total)
		}
	}
	return nil
}

// the tree holds exactly the expected keys in sorted order
func (b *bench) compare(phase string) error {
	keys := lo.Keys(b.expected)
	slices.Sort(keys)
	if !slices.Equal(keys, b.tree.Keys()) {
		return fmt.Errorf("%s: key order mismatch: %w", phase, fault.ErrCorruptTree)
	}
	if !b.tree.WellFormed() {
		return fmt.Errorf("%s: %w", phase, fault.ErrCorruptTree)
	}
	return nil
}
