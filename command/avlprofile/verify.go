// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/fault"
)

// state for the correctness checks
type verifier struct {
	log      *logger.L
	random   *rand.Rand
	inserted int
	removed  int
	failures int
}

func newVerifier(log *logger.L, random *rand.Rand, inserted int, removed int) *verifier {
	return &verifier{
		log:      log,
		random:   random,
		inserted: inserted,
		removed:  removed,
	}
}

// run all checks, each on fresh sets from the factories
func (v *verifier) run(newSet func() OrderedSet, newBaseline func() OrderedSet) error {
	v.failures = 0

	v.insertSize(newSet(), newBaseline())
	v.insertFind(newSet())
	v.eraseFind(newSet())

	if v.failures > 0 {
		v.log.Errorf("methods are incorrect: %d failures", v.failures)
		return fault.ErrVerificationFailed
	}
	v.log.Info("methods seem to work correctly")
	return nil
}

// random inserts must give the same size as the baseline
func (v *verifier) insertSize(set OrderedSet, baseline OrderedSet) {
	for i := 0; i < v.inserted; i += 1 {
		key := v.random.Int()
		set.Insert(key)
		baseline.Insert(key)
		if set.Len() != baseline.Len() {
			v.failf("insert, size: key: %d  size: %d  expected: %d", key, set.Len(), baseline.Len())
		}
	}
	v.check("insert, size", set)
}

// every inserted key must be found at once
func (v *verifier) insertFind(set OrderedSet) {
	for i := 0; i < v.inserted; i += 1 {
		key := v.random.Int()
		set.Insert(key)
		if !set.Has(key) {
			v.failf("insert, find: key: %d not found", key)
		}
	}
	v.check("insert, find", set)
}

// an erased key must not be found
func (v *verifier) eraseFind(set OrderedSet) {
	keys := make([]int, 0, v.inserted)
	for i := 0; i < v.inserted; i += 1 {
		key := v.random.Int()
		set.Insert(key)
		keys = append(keys, key)
	}

	// mix of present and most likely absent keys
	for i := 0; i < v.removed; i += 1 {
		key := v.random.Int()
		if 0 == i%2 {
			key = keys[v.random.Intn(len(keys))]
		}
		set.Delete(key)
		if set.Has(key) {
			v.failf("erase, find: key: %d still found", key)
		}
	}
	v.check("erase, find", set)
}

// structural check if the set supports it
func (v *verifier) check(phase string, set OrderedSet) {
	c, ok := set.(checker)
	if !ok {
		return
	}
	if err := c.Check(); nil != err {
		v.failf("%s: structure: %s", phase, err)
	}
}

func (v *verifier) failf(format string, arguments ...interface{}) {
	v.failures += 1
	v.log.Errorf(format, arguments...)
}
