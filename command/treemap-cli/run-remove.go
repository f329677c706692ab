// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/samber/lo"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/treemap"
)

type removeResult struct {
	Removed []treemap.Entry[string, string] `json:"removed"`
	Missing []string                        `json:"missing"`
	Count   int                             `json:"count"`
}

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fault.ErrInvalidCount
	}

	result := removeResult{
		Removed: []treemap.Entry[string, string]{},
		Missing: []string{},
	}

	for _, key := range lo.Uniq([]string(c.Args())) {
		value, ok := m.tree.Remove(key)
		if !ok {
			result.Missing = append(result.Missing, key)
			continue
		}
		m.log.Infof("remove: key: %q", key)
		result.Removed = append(result.Removed, treemap.Entry[string, string]{
			Key:   key,
			Value: value,
		})
	}
	result.Count = m.tree.Count()

	return printJson(m.w, result)
}
