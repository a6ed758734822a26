// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/avlset/configuration"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultInserted        = 100000
	defaultRemoved         = 50000
	defaultSteps           = 100
	defaultElementsPerStep = 10000
	defaultBaseline        = btreeBaseline

	defaultInsertFile = "asymp-insert.txt"
	defaultFindFile   = "asymp-find.txt"
	defaultEraseFile  = "asymp-erase.txt"

	defaultLogDirectory = "log"
	defaultLogFile      = "avlprofile.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// OutputType - the three timing series files
type OutputType struct {
	Insert string `gluamapper:"insert" json:"insert"`
	Find   string `gluamapper:"find" json:"find"`
	Erase  string `gluamapper:"erase" json:"erase"`
}

// Configuration - everything read from the Lua file
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Seed            int64                `gluamapper:"seed" json:"seed"`
	Inserted        int                  `gluamapper:"inserted" json:"inserted"`
	Removed         int                  `gluamapper:"removed" json:"removed"`
	Steps           int                  `gluamapper:"steps" json:"steps"`
	ElementsPerStep int                  `gluamapper:"elements_per_step" json:"elements_per_step"`
	RandomInsert    bool                 `gluamapper:"random_insert" json:"random_insert"`
	Baseline        string               `gluamapper:"baseline" json:"baseline"`
	Output          OutputType           `gluamapper:"output" json:"output"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// the configuration used when no file is given
func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory:   defaultDataDirectory,
		Seed:            0, // seed from the clock
		Inserted:        defaultInserted,
		Removed:         defaultRemoved,
		Steps:           defaultSteps,
		ElementsPerStep: defaultElementsPerStep,
		RandomInsert:    false,
		Baseline:        defaultBaseline,
		Output: OutputType{
			Insert: defaultInsertFile,
			Find:   defaultFindFile,
			Erase:  defaultEraseFile,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration
//
// an empty file name uses the defaults relative to the current
// directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	dataDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	return normalise(options, dataDirectory)
}

// check values and expand all paths
func normalise(options *Configuration, dataDirectory string) (*Configuration, error) {

	if options.Inserted <= 0 || options.Removed < 0 || options.Steps <= 0 || options.ElementsPerStep <= 0 {
		return nil, fault.ErrInvalidCount
	}

	options.Baseline = strings.ToLower(options.Baseline)
	if _, ok := baselines[options.Baseline]; !ok {
		return nil, fault.ErrUnknownBaseline
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrMissingDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.New(fmt.Sprintf("Path: %q is not a directory", options.DataDirectory))
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Logging.File, nil},
		{&options.Output.Insert, &options.DataDirectory},
		{&options.Output.Find, &options.DataDirectory},
		{&options.Output.Erase, &options.DataDirectory},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, errors.New(fmt.Sprintf("Files: %q is not plain name", *f[0]))
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
