// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	logCategory = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// a configuration with everything in a temporary directory
func testConfiguration(t *testing.T) *Configuration {
	options := defaultConfiguration()
	options.Inserted = 500
	options.Removed = 300
	options.Steps = 4
	options.ElementsPerStep = 50
	options.Seed = 1

	options, err := normalise(options, t.TempDir())
	if nil != err {
		t.Fatalf("normalise error: %s", err)
	}
	return options
}
