// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/treemap/fault"
	"github.com/bitmark-inc/treemap/treemap"
)

type metadata struct {
	file    string
	config  *Configuration
	tree    *treemap.Tree[string, string]
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "treemap-cli"
	app.Usage = "load an ordered map from a configuration file and explore it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "ordering, o",
			Value: "",
			Usage: " key `ORDER` overriding the configuration [lexical|numeric|reverse]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "list",
			Usage:     "list all entries in key order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "table, t",
					Usage: " display as a table instead of JSON",
				},
			},
			Action: runList,
		},
		{
			Name:      "get",
			Usage:     "display the value stored for a key",
			ArgsUsage: "KEY",
			Action:    runGet,
		},
		{
			Name:      "put",
			Usage:     "store a value, showing any value it replaced",
			ArgsUsage: "KEY VALUE",
			Action:    runPut,
		},
		{
			Name:      "remove",
			Usage:     "remove one or more keys",
			ArgsUsage: "KEY...",
			Action:    runRemove,
		},
		{
			Name:      "drain",
			Usage:     "remove every key with a prefix while iterating",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "prefix, p",
					Value: "",
					Usage: " remove keys starting with `PREFIX` (empty removes all)",
				},
			},
			Action: runDrain,
		},
		{
			Name:   "check",
			Usage:  "verify the structure of the loaded tree",
			Action: runCheck,
		},
		{
			Name:  "print",
			Usage: "draw the tree sideways",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " include values",
				},
			},
			Action: runPrint,
		},
		{
			Name:   "version",
			Usage:  "display treemap-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "h" == command || "" == command {
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			return fault.ErrRequiredConfigFile
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := getConfiguration(file, c.App.Name)
		if nil != err {
			return err
		}

		if ordering := c.GlobalString("ordering"); "" != ordering {
			config.Ordering = ordering
		}

		// start logging
		if err = logger.Initialise(config.Logging); nil != err {
			return err
		}
		m := &metadata{
			file:    file,
			config:  config,
			log:     logger.New("main"),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// set up the fault panic log now that logging is available
		if err = fault.Initialise(); nil != err {
			m.log.Errorf("fault initialise error: %s", err)
			return err
		}

		m.log.Infof("version: %s", version)
		m.log.Infof("configuration: %q", file)

		m.tree, err = loadTree(m.log, config)
		if nil != err {
			m.log.Errorf("load error: %s", err)
			return err
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		delete(c.App.Metadata, "config")
		return nil
	}

	return app
}
