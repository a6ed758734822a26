// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"

	"github.com/bitmark-inc/logger"
)

const (
	mega = 1048576
)

// log a snapshot of the memory statistics after a collection so
// retained allocations are visible
func memstats(log *logger.L, stage string) runtime.MemStats {

	runtime.GC()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	text, err := json.Marshal(m)
	if nil != err {
		log.Errorf("marshal error: %s", err)
	} else {
		log.Debugf("%s: stats: %s", stage, text)
	}
	a := m.Alloc / mega
	t := m.TotalAlloc / mega
	s := m.Sys / mega
	log.Infof("%s: allocated: %d M  cumulative: %d M  OS virtual: %d M  objects: %d", stage, a, t, s, m.HeapObjects)

	return m
}
