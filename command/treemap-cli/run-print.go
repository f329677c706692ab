// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	depth := m.tree.Print(m.w, c.Bool("data"))
	if m.verbose {
		fmt.Fprintf(m.w, "count: %d\n", m.tree.Count())
	}
	fmt.Fprintf(m.w, "depth: %d\n", depth)

	return nil
}
