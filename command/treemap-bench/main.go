// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treemap/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "deletes", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s\n", version)
		return
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--config-file=FILE] [--count=N] [--deletes=N] [--seed=N] [--check]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile, program)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides the configuration file
	if err := applyOptions(theConfiguration, options); nil != err {
		exitwithstatus.Message("%s: option error: %s", program, err)
	}

	// start logging
	stopLogging, err := startLogging(theConfiguration.Logging)
	if nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer stopLogging()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	verbose := len(options["verbose"]) > 0

	start := time.Now()
	result, err := benchmark(log, theConfiguration.parameters(), verbose)
	if nil != err {
		log.Criticalf("benchmark error: %s", err)
		exitwithstatus.Message("%s: benchmark failed: %s", program, err)
	}
	result.Elapsed = time.Since(start).String()

	b, err := json.MarshalIndent(result, "", "  ")
	if nil != err {
		exitwithstatus.Message("%s: json error: %s", program, err)
	}
	fmt.Printf("%s\n", b)
}

// start the logger and the fault panic log; the returned function
// closes both
func startLogging(logging logger.Configuration) (func(), error) {
	if err := logger.Initialise(logging); nil != err {
		return nil, err
	}
	if err := fault.Initialise(); nil != err {
		logger.Finalise()
		return nil, err
	}
	return func() {
		fault.Finalise()
		logger.Finalise()
	}, nil
}

// set configuration values from any command line options
func applyOptions(config *Configuration, options map[string][]string) error {

	for _, o := range []struct {
		name  string
		value *int
	}{
		{"count", &config.Count},
		{"deletes", &config.Deletes},
	} {
		if 0 == len(options[o.name]) {
			continue
		}
		n, err := strconv.Atoi(options[o.name][0])
		if nil != err {
			return fmt.Errorf("%s: %w", o.name, err)
		}
		*o.value = n
	}

	if len(options["seed"]) > 0 {
		seed, err := strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			return fmt.Errorf("seed: %w", err)
		}
		config.Seed = seed
	}

	if len(options["check"]) > 0 {
		config.Check = true
	}

	return config.validate()
}
