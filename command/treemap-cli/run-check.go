// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/treemap/treemap"
)

type checkResult struct {
	WellFormed bool     `json:"wellFormed"`
	Count      int      `json:"count"`
	Depth      int      `json:"depth"`
	Violations []string `json:"violations"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	result := checkResult{
		Violations: []string{},
	}

	// violations are logged as well as returned
	m.tree.SetReporter(treemap.ReporterFunc(func(message string) {
		m.log.Errorf("invariant: %s", message)
		result.Violations = append(result.Violations, message)
	}))

	result.WellFormed = m.tree.WellFormed()
	result.Count = m.tree.Count()
	result.Depth = m.tree.Depth()

	m.log.Infof("check: well formed: %t", result.WellFormed)

	return printJson(m.w, result)
}
