// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type CorruptError GenericError
type ExistsError GenericError
type InvalidError GenericError
type ModifiedError GenericError
type NotFoundError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCorruptTree          = CorruptError("tree structure is corrupt")
	ErrInvalidCount         = InvalidError("count is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOrdering      = InvalidError("ordering is invalid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrNilKey               = InvalidError("key is nil")
	ErrNoCurrentItem        = StateError("no current item to remove")
	ErrNoMoreItems          = NotFoundError("no more items")
	ErrNotComparable        = InvalidError("keys are not mutually comparable")
	ErrRequiredConfigFile   = InvalidError("config file is required")
	ErrStaleIterator        = ModifiedError("stale iterator")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CorruptError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e ModifiedError) Error() string { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e StateError) Error() string    { return string(e) }

// determine the class of an error
func IsErrCorrupt(e error) bool  { _, ok := e.(CorruptError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrModified(e error) bool { _, ok := e.(ModifiedError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrState(e error) bool    { _, ok := e.(StateError); return ok }
