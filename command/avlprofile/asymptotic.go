// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/util"
)

// suffix for the baseline copy of each series
const baselineSuffix = ".baseline"

// destinations for the three timing series
type series struct {
	insert io.Writer
	find   io.Writer
	erase  io.Writer
}

// parameters of one asymptotic run
type asymptoticParameters struct {
	steps           int
	elementsPerStep int
	randomInsert    bool
}

// time batches of inserts and finds as the set grows, then batches of
// erases as it shrinks
//
// each line is: <seconds> <number of elements at the middle of the batch>
func asymptotic(log *logger.L, set OrderedSet, random *rand.Rand, p asymptoticParameters, out series) error {

	eps := p.elementsPerStep
	batches := make([][]int, p.steps)

	for i := 0; i < p.steps; i += 1 {
		keys := make([]int, eps)
		for j := 0; j < eps; j += 1 {
			if p.randomInsert {
				keys[j] = random.Int()
			} else {
				keys[j] = i*eps + j
			}
		}
		batches[i] = keys

		start := time.Now()
		for _, k := range keys {
			set.Insert(k)
		}
		elapsed := time.Since(start)
		if _, err := fmt.Fprintf(out.insert, "%g %d\n", elapsed.Seconds(), i*eps+eps/2); nil != err {
			return err
		}

		limit := (i + 1) * eps
		start = time.Now()
		for j := 0; j < eps; j += 1 {
			if p.randomInsert {
				set.Has(random.Int())
			} else {
				set.Has(random.Intn(limit))
			}
		}
		elapsed = time.Since(start)
		if _, err := fmt.Fprintf(out.find, "%g %d\n", elapsed.Seconds(), i*eps+eps/2); nil != err {
			return err
		}
	}
	log.Infof("inserted: %d elements in: %d steps", set.Len(), p.steps)

	for _, keys := range batches {
		start := time.Now()
		for _, k := range keys {
			set.Delete(k)
		}
		elapsed := time.Since(start)
		if _, err := fmt.Fprintf(out.erase, "%g %d\n", elapsed.Seconds(), set.Len()+eps/2); nil != err {
			return err
		}
	}
	log.Infof("remaining: %d elements", set.Len())

	return nil
}

// output files for one series, closed and flushed by the returned function
func createSeries(names OutputType, suffix string) (series, func() error, error) {

	files := make([]*os.File, 0, 3)
	writers := make([]*bufio.Writer, 0, 3)

	closeAll := func() error {
		var firstErr error
		for i, f := range files {
			if err := writers[i].Flush(); nil != err && nil == firstErr {
				firstErr = err
			}
			if err := f.Close(); nil != err && nil == firstErr {
				firstErr = err
			}
		}
		return firstErr
	}

	for _, name := range []string{names.Insert, names.Find, names.Erase} {
		f, err := os.Create(name + suffix)
		if nil != err {
			closeAll()
			return series{}, nil, err
		}
		files = append(files, f)
		writers = append(writers, bufio.NewWriter(f))
	}

	s := series{
		insert: writers[0],
		find:   writers[1],
		erase:  writers[2],
	}
	return s, closeAll, nil
}

// run the asymptotic measurement on a fresh set and write to the named files
func asymptoticToFiles(log *logger.L, newSet func() OrderedSet, random *rand.Rand, p asymptoticParameters, names OutputType, suffix string) error {
	for _, name := range []string{names.Insert, names.Find, names.Erase} {
		if util.EnsureFileExists(name + suffix) {
			log.Warnf("overwrite: %q", name+suffix)
		}
	}

	out, closeAll, err := createSeries(names, suffix)
	if nil != err {
		return err
	}

	err = asymptotic(log, newSet(), random, p, out)
	if closeErr := closeAll(); nil == err {
		err = closeErr
	}
	return err
}
