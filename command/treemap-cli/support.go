// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/treemap/fault"
)

// keys are taken as given, only a blank key is rejected
func checkKey(key string) (string, error) {
	if "" == strings.TrimSpace(key) {
		return "", fault.ErrNilKey
	}
	return key, nil
}

// all command results are written as indented JSON
func printJson(handle io.Writer, result interface{}) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}
