// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treemap/configuration"
	"github.com/bitmark-inc/treemap/treemap"
)

// Entry - one key/value pair from the configuration file
type Entry struct {
	Key   string `gluamapper:"key"`
	Value string `gluamapper:"value"`
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Ordering string               `gluamapper:"ordering"`
	Logging  logger.Configuration `gluamapper:"logging"`
	Entries  []Entry              `gluamapper:"entries"`
}

// read and validate the configuration file
func getConfiguration(configurationFileName string, program string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{
		Ordering: configuration.OrderingLexical,
		Logging:  configuration.DefaultLogging(program),
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// check the ordering name before anything is started
	if _, err := configuration.Comparator(options.Ordering); nil != err {
		return nil, err
	}

	if err := configuration.ResolveLogging(configurationFileName, &options.Logging); nil != err {
		return nil, err
	}

	return options, nil
}

// build the tree from the configured entries, a later entry for the
// same key replaces an earlier one
func loadTree(log *logger.L, config *Configuration) (*treemap.Tree[string, string], error) {

	compare, err := configuration.Comparator(config.Ordering)
	if nil != err {
		return nil, err
	}

	tree := treemap.New[string, string](compare)
	tree.SetReporter(treemap.ReporterFunc(func(message string) {
		log.Errorf("invariant: %s", message)
	}))

	for i, entry := range config.Entries {
		previous, replaced, err := tree.Put(entry.Key, entry.Value)
		if nil != err {
			return nil, err
		}
		if replaced {
			log.Warnf("entries[%d]: key: %q replaces value: %q", i+1, entry.Key, previous)
		}
	}

	log.Infof("ordering: %s  loaded: %d entries  size: %d", config.Ordering, len(config.Entries), tree.Count())
	return tree, nil
}
