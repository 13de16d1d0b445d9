// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/replay"
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
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--check] [--config-file=FILE] [add=N|del=N|clear|dump|print|check]…", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	verbose := len(options["verbose"]) > 0
	if verbose {
		theConfiguration.Logging.Console = true
		if nil == theConfiguration.Logging.Levels {
			theConfiguration.Logging.Levels = make(map[string]string)
		}
		theConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	tokens := append(theConfiguration.Operations, arguments...)
	operations, err := replay.ParseAll(tokens)
	if nil != err {
		log.Criticalf("parse error: %s", err)
		exitwithstatus.Message("%s: parse error: %s", program, err)
	}

	if theConfiguration.CheckAll || len(options["check"]) > 0 {
		operations = replay.WithChecks(operations)
	}

	tree := avl.New[int64]()
	result, err := replay.Run(tree, operations, os.Stdout, logger.New("replay"))
	if nil != err {
		fault.Criticalf("replay failed: %s", err)
		exitwithstatus.Message("%s: replay failed: %s", program, err)
	}

	if verbose {
		report := struct {
			Result    replay.Result  `json:"result"`
			Nodes     int            `json:"nodes"`
			Height    int            `json:"height"`
			Rotations avl.Statistics `json:"rotations"`
		}{
			Result:    result,
			Nodes:     tree.Count(),
			Height:    tree.Height(),
			Rotations: tree.Rotations(),
		}
		b, err := json.MarshalIndent(report, "", "  ")
		if nil != err {
			exitwithstatus.Message("%s: report json error: %s", program, err)
		}
		fmt.Fprintf(os.Stderr, "%s\n", b)
	}

	fmt.Println(tree.Serialize())
}
