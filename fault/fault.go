// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	// AccessDeniedError - caller not permitted to perform the operation
	AccessDeniedError GenericError

	// ExistsError - something exists that should not
	ExistsError GenericError

	// InvalidError - failures from validating inputs
	InvalidError GenericError

	// InsufficientError - a resource cannot cover the request
	InsufficientError GenericError

	// NotFoundError - something is missing that should exist
	NotFoundError GenericError

	// ProcessError - failures in the flow of an operation
	ProcessError GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised      = ProcessError("already initialised")
	AssetAlreadyIssued      = ExistsError("asset already issued")
	AssetNotFound           = NotFoundError("asset not found")
	AlreadyPaused           = ProcessError("already paused")
	CertificateFileExists   = ExistsError("certificate file already exists")
	EmptyAssetList          = InvalidError("empty asset list")
	EmptyFungibleList       = InvalidError("empty fungible list")
	InsufficientAllowance   = InsufficientError("insufficient allowance")
	InsufficientPoolBalance = InsufficientError("insufficient pool balance")
	InsufficientTokens      = InsufficientError("insufficient tokens")
	InsufficientValue       = InsufficientError("insufficient value")
	InvalidCount            = InvalidError("invalid count")
	InvalidDatabaseVersion  = ProcessError("invalid database version")
	InvalidIdentifierLength = InvalidError("invalid identifier length")
	InvalidIpAddress        = InvalidError("invalid IP Address")
	InvalidItem             = InvalidError("invalid item")
	InvalidPortNumber       = InvalidError("invalid port number")
	InvalidStructPointer    = InvalidError("invalid struct pointer")
	InvalidUnitAmount       = InvalidError("invalid unit amount")
	KeyFileExists           = ExistsError("key file already exists")
	MissingParameters       = InvalidError("missing parameters")
	NotAssetOwner           = AccessDeniedError("not asset owner")
	NotAvailableWhenPaused  = ProcessError("not available when paused")
	NotCustodianOwner       = AccessDeniedError("not custodian owner")
	NotInitialised          = ProcessError("not initialised")
	NotPaused               = ProcessError("not paused")
	PayoutOverflow          = InvalidError("payout overflow")
	RateLimiting            = ProcessError("rate limiting")
	ReentrantCall           = ProcessError("reentrant call")
	TransactionInUse        = ProcessError("transaction in use")
	UnrecognisedProvenance  = NotFoundError("unrecognised provenance")
	UnsupportedCollection   = InvalidError("unsupported collection")
	UnsupportedToken        = InvalidError("unsupported token")
	WithdrawToSelf          = InvalidError("withdraw to self")
	ZeroAmount              = InvalidError("zero amount")
	ZeroValue               = InvalidError("zero value")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessDeniedError) Error() string { return string(e) }
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e InsufficientError) Error() string { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

// IsErrAccessDenied - determine the class of an error
func IsErrAccessDenied(e error) bool { _, ok := e.(AccessDeniedError); return ok }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrInsufficient - determine the class of an error
func IsErrInsufficient(e error) bool { _, ok := e.(InsufficientError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
