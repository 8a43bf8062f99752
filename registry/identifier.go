// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/buybackd/fault"
)

// IdentifierLength - number of bytes in a collection or token identifier
const IdentifierLength = 32

// CollectionId - identifies one non-fungible collection
//
// represented as hex text for JSON encoding
type CollectionId [IdentifierLength]byte

// TokenId - identifies one fungible token type
type TokenId [IdentifierLength]byte

// AssetId - identifies one collectible within its collection
type AssetId uint64

// String - convert a collection identifier to hex
func (collection CollectionId) String() string {
	return hex.EncodeToString(collection[:])
}

// MarshalText - hex text form for JSON
func (collection CollectionId) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(IdentifierLength)
	buffer := make([]byte, size)
	hex.Encode(buffer, collection[:])
	return buffer, nil
}

// UnmarshalText - convert hex text back to a collection identifier
func (collection *CollectionId) UnmarshalText(s []byte) error {
	return decodeIdentifier(collection[:], s)
}

// CollectionIdFromString - decode and validate a hex collection identifier
func CollectionIdFromString(s string) (CollectionId, error) {
	var collection CollectionId
	err := decodeIdentifier(collection[:], []byte(s))
	return collection, err
}

// String - convert a token identifier to hex
func (token TokenId) String() string {
	return hex.EncodeToString(token[:])
}

// MarshalText - hex text form for JSON
func (token TokenId) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(IdentifierLength)
	buffer := make([]byte, size)
	hex.Encode(buffer, token[:])
	return buffer, nil
}

// UnmarshalText - convert hex text back to a token identifier
func (token *TokenId) UnmarshalText(s []byte) error {
	return decodeIdentifier(token[:], s)
}

// TokenIdFromString - decode and validate a hex token identifier
func TokenIdFromString(s string) (TokenId, error) {
	var token TokenId
	err := decodeIdentifier(token[:], []byte(s))
	return token, err
}

// Bytes - big endian byte form for database keys
func (asset AssetId) Bytes() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(asset))
	return buffer
}

func decodeIdentifier(destination []byte, s []byte) error {
	if hex.EncodedLen(IdentifierLength) != len(s) {
		return fault.InvalidIdentifierLength
	}
	_, err := hex.Decode(destination, s)
	if err != nil {
		return fault.InvalidItem
	}
	return nil
}
