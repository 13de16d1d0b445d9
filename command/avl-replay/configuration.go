// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
)

// basic defaults
const (
	defaultLogDirectory = "."
	defaultLogFile      = "avl-replay.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - contents of the optional configuration file
type Configuration struct {
	CheckAll   bool                 `gluamapper:"check_all" json:"check_all"`
	Operations []string             `gluamapper:"operations" json:"operations"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults used when there is no configuration file
func defaultConfiguration() *Configuration {
	return &Configuration{
		CheckAll:   false,
		Operations: nil,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// will read and decode the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()
	if "" == configurationFileName {
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	err = configuration.ParseConfigurationFile(configurationFileName, options)
	if nil != err {
		return nil, err
	}

	// log directory is relative to the configuration file
	if !filepath.IsAbs(options.Logging.Directory) {
		dataDirectory, _ := filepath.Split(configurationFileName)
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	return options, nil
}
