// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/fault"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := ""
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "verify", "v", "asymptotic", "a", "all", "":
		return false

	case "version":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--memory-stats] [--config-file=FILE] [command]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                             - display version sting\n\n")

		fmt.Printf("  verify                     (v)      - check insert, find and erase against the baseline set\n")
		fmt.Printf("\n")

		fmt.Printf("  asymptotic                 (a)      - write insert, find and erase timing series\n")
		fmt.Printf("                                        for the AVL set and the baseline set\n")
		fmt.Printf("\n")

		fmt.Printf("  all                                 - verify then asymptotic, same as no command\n")
		fmt.Printf("\n")

		fmt.Printf("baselines: %q %q %q\n", btreeBaseline, godsBaseline, llrbBaseline)

		if "help" != command && "h" != command && "?" != command {
			exitwithstatus.Exit(1)
		}
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// profile command handler
//
// returns the first error from any stage
func processProfileCommand(log *logger.L, arguments []string, options *Configuration) error {

	command := "all"
	if len(arguments) > 0 && "" != arguments[0] {
		command = arguments[0]
	}

	seed := options.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	log.Infof("random seed: %d", seed)
	random := rand.New(rand.NewSource(seed))

	newBaseline, ok := baselines[options.Baseline]
	if !ok {
		return fault.ErrUnknownBaseline
	}
	log.Infof("baseline: %s", options.Baseline)

	doVerify := false
	doAsymptotic := false
	switch command {
	case "verify", "v":
		doVerify = true
	case "asymptotic", "a":
		doAsymptotic = true
	case "all":
		doVerify = true
		doAsymptotic = true
	default:
		return fault.ErrUnknownCommand
	}

	if doVerify {
		v := newVerifier(log, random, options.Inserted, options.Removed)
		if err := v.run(newAVLSet, newBaseline); nil != err {
			return err
		}
	}

	if doAsymptotic {
		p := asymptoticParameters{
			steps:           options.Steps,
			elementsPerStep: options.ElementsPerStep,
			randomInsert:    options.RandomInsert,
		}
		log.Infof("asymptotic: steps: %d  elements per step: %d  random: %t", p.steps, p.elementsPerStep, p.randomInsert)
		err := asymptoticToFiles(log, newAVLSet, random, p, options.Output, "")
		if nil != err {
			return err
		}
		err = asymptoticToFiles(log, newBaseline, random, p, options.Output, baselineSuffix)
		if nil != err {
			return err
		}
		log.Infof("series: %q %q %q", options.Output.Insert, options.Output.Find, options.Output.Erase)
	}
	return nil
}
