// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treemap/fault"
)

func TestPanicWithoutLogger(t *testing.T) {
	assert.PanicsWithValue(t, "abort, see last messages in log file", func() {
		fault.Panicf("broken: %d", 42)
	}, "Panicf did not panic")

	assert.PanicsWithValue(t, "final", func() {
		fault.Panic("final")
	}, "Panic did not panic")
}

func TestCriticalWithoutLogger(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err, "pipe")

	stderr := os.Stderr
	os.Stderr = w
	fault.Criticalf("tree broken: %d", 7)
	os.Stderr = stderr
	require.NoError(t, w.Close(), "close")

	b, err := io.ReadAll(r)
	require.NoError(t, err, "read")
	assert.True(t, strings.HasPrefix(string(b), "*** "), "prefix: %q", b)
	assert.True(t, strings.HasSuffix(string(b), "tree broken: 7\n"), "message: %q", b)
}

func TestInitialiseTwice(t *testing.T) {
	dir := t.TempDir()

	logging := logger.Configuration{
		Directory: dir,
		File:      "fault.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	require.NoError(t, logger.Initialise(logging), "logger initialise")
	defer logger.Finalise()

	require.NoError(t, fault.Initialise(), "first initialise")
	defer fault.Finalise()

	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second initialise")

	fault.Critical("logged to file")
	fault.Criticalf("logged to file: %d", 1)
}
