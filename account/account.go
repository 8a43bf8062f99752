// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identities for callers, the custodian and its owner
//
// an account is a fixed length byte value, represented externally as
// base58 with a SHA3-256 based checksum appended
package account

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/buybackd/fault"
)

// AccountSize - length of the raw account value
const AccountSize = 32

// checksum bytes appended before base58 encoding
const checksumSize = 4

// Account - the opaque identity of a caller or of the custodian
type Account [AccountSize]byte

// String - base58 representation with checksum
func (account Account) String() string {
	buffer := make([]byte, 0, AccountSize+checksumSize)
	buffer = append(buffer, account[:]...)
	digest := sha3.Sum256(account[:])
	buffer = append(buffer, digest[:checksumSize]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to base58 for JSON
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert base58 back to an account checking the checksum
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if err != nil {
		return err
	}
	*account = a
	return nil
}

// AccountFromBase58 - decode and validate a base58 account string
func AccountFromBase58(s string) (Account, error) {
	var account Account

	buffer, err := base58.Decode(s)
	if err != nil {
		return account, fault.InvalidItem
	}
	if AccountSize+checksumSize != len(buffer) {
		return account, fault.InvalidIdentifierLength
	}

	digest := sha3.Sum256(buffer[:AccountSize])
	for i := 0; i < checksumSize; i += 1 {
		if digest[i] != buffer[AccountSize+i] {
			return account, fault.InvalidItem
		}
	}

	copy(account[:], buffer[:AccountSize])
	return account, nil
}

// IsZero - check for the all zero account
func (account Account) IsZero() bool {
	for _, b := range account {
		if 0 != b {
			return false
		}
	}
	return true
}

// Bytes - raw byte form for database keys
func (account Account) Bytes() []byte {
	return account[:]
}
