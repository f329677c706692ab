// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treemap/configuration"
	"github.com/bitmark-inc/treemap/fault"
)

const (
	defaultCount   = 1000
	defaultDeletes = 500
	maximumCount   = 10000 // four digit keys
)

// Configuration - settings from the optional Lua configuration file
type Configuration struct {
	Count   int                  `gluamapper:"count"`
	Deletes int                  `gluamapper:"deletes"`
	Seed    int64                `gluamapper:"seed"`
	Check   bool                 `gluamapper:"check"`
	Logging logger.Configuration `gluamapper:"logging"`
}

// read the configuration file, an empty name keeps the defaults
func getConfiguration(configurationFileName string, program string) (*Configuration, error) {

	options := &Configuration{
		Count:   defaultCount,
		Deletes: defaultDeletes,
		Seed:    1,
		Logging: configuration.DefaultLogging(filepath.Base(program)),
	}

	if "" != configurationFileName {
		absolute, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		configurationFileName = absolute

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	if err := configuration.ResolveLogging(configurationFileName, &options.Logging); nil != err {
		return nil, err
	}

	return options, options.validate()
}

func (config *Configuration) validate() error {
	if config.Count < 0 || config.Count > maximumCount {
		return fault.ErrInvalidCount
	}
	if config.Deletes < 0 || config.Deletes > config.Count {
		return fault.ErrInvalidCount
	}
	return nil
}

func (config *Configuration) parameters() parameters {
	return parameters{
		Count:   config.Count,
		Deletes: config.Deletes,
		Seed:    config.Seed,
		Check:   config.Check,
	}
}
