// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/treemap/treemap"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	entries := m.tree.Entries()

	if !c.Bool("table") {
		return printJson(m.w, entries)
	}

	t := table.NewWriter()
	t.SetOutputMirror(m.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Key", "Value"})
	t.AppendRows(lo.Map(entries, func(entry treemap.Entry[string, string], i int) table.Row {
		return table.Row{i + 1, entry.Key, entry.Value}
	}))
	t.AppendFooter(table.Row{"", "Count", m.tree.Count()})
	t.Render()

	return nil
}
