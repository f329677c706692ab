// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
)

const (
	defaultLogDirectory = "log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// DefaultLogging - logging setup used when the configuration file
// does not override it
func DefaultLogging(program string) logger.Configuration {
	return logger.Configuration{
		Directory: defaultLogDirectory,
		File:      program + ".log",
		Size:      defaultLogSize,
		Count:     defaultLogCount,
		Console:   false,
		Levels: LoglevelMap{
			"main":            "info",
			logger.DefaultTag: "critical",
		},
	}
}

// ResolveLogging - make a relative log directory relative to the
// directory holding the configuration file and create it if missing
func ResolveLogging(configurationFileName string, logging *logger.Configuration) error {
	if "" == logging.Directory {
		logging.Directory = defaultLogDirectory
	}
	if !filepath.IsAbs(logging.Directory) {
		base := "."
		if "" != configurationFileName {
			absolute, err := filepath.Abs(filepath.Clean(configurationFileName))
			if nil != err {
				return err
			}
			base, _ = filepath.Split(absolute)
		}
		logging.Directory = filepath.Join(base, logging.Directory)
	}
	return os.MkdirAll(logging.Directory, 0o700)
}
