// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"
)

type drainResult struct {
	Prefix  string   `json:"prefix"`
	Removed []string `json:"removed"`
	Kept    []string `json:"kept"`
	Count   int      `json:"count"`
}

func runDrain(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	prefix := c.String("prefix")

	removed := []string{}
	it := m.tree.Iterator()
	for it.HasNext() {
		key, _, err := it.Next()
		if nil != err {
			return err
		}
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if err := it.Remove(); nil != err {
			return err
		}
		removed = append(removed, key)
	}
	m.log.Infof("drain: prefix: %q  removed: %d", prefix, len(removed))

	return printJson(m.w, drainResult{
		Prefix:  prefix,
		Removed: removed,
		Kept:    m.tree.Keys(),
		Count:   m.tree.Count(),
	})
}
