// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/treemap/fault"
)

type putResult struct {
	Key      string  `json:"key"`
	Value    string  `json:"value"`
	Previous *string `json:"previous,omitempty"`
	Count    int     `json:"count"`
}

func runPut(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 2 != c.NArg() {
		return fault.ErrInvalidCount
	}

	key, err := checkKey(c.Args().Get(0))
	if nil != err {
		return err
	}
	value := c.Args().Get(1)

	previous, replaced, err := m.tree.Put(key, value)
	if nil != err {
		return err
	}
	m.log.Infof("put: key: %q  replaced: %t", key, replaced)

	result := putResult{
		Key:   key,
		Value: value,
		Count: m.tree.Count(),
	}
	if replaced {
		result.Previous = &previous
	}
	return printJson(m.w, result)
}
