// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/treemap/fault"
)

type getResult struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkKey(c.Args().Get(0))
	if nil != err {
		return err
	}

	value, ok := m.tree.Get(key)
	if !ok {
		return fault.ErrKeyNotFound
	}

	return printJson(m.w, getResult{
		Key:   key,
		Value: value,
	})
}
