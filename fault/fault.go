// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrEraseSentinel         = InvalidError("cannot erase a sentinel position")
	ErrForeignIterator       = InvalidError("iterator does not belong to this tree")
	ErrInvalidCount          = InvalidError("count must be positive")
	ErrInvalidDereference    = InvalidError("invalid dereference of a sentinel position")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMissingDataDirectory  = NotFoundError("data directory is not set")
	ErrNilComparator         = InvalidError("comparator function is nil")
	ErrStepBeforeBegin       = InvalidError("cannot step before the before-begin position")
	ErrStepPastEnd           = InvalidError("cannot step past the end position")
	ErrUnknownBaseline       = NotFoundError("unknown baseline")
	ErrUnknownCommand        = NotFoundError("unknown command")
	ErrVerificationFailed    = ProcessError("verification failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
