// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/fault"
)

func TestBase58RoundTrip(t *testing.T) {
	acc := account.Account{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18,
		0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27, 0x28,
		0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38,
	}

	s := acc.String()
	assert.NotEqual(t, "", s, "empty base58 representation")

	decoded, err := account.AccountFromBase58(s)
	assert.Nil(t, err, "wrong AccountFromBase58")
	assert.Equal(t, acc, decoded, "wrong round trip")
}

func TestCorruptChecksum(t *testing.T) {
	acc := account.Account{0xff, 0xfe}
	s := acc.String()

	// flip the final character to damage the checksum
	last := s[len(s)-1]
	replacement := byte('2')
	if last == replacement {
		replacement = '3'
	}
	corrupt := s[:len(s)-1] + string(replacement)

	_, err := account.AccountFromBase58(corrupt)
	assert.NotNil(t, err, "corrupt checksum accepted")
}

func TestWrongLength(t *testing.T) {
	_, err := account.AccountFromBase58("3yZe7d")
	assert.Equal(t, fault.InvalidIdentifierLength, err, "wrong error")
}

func TestJSONMarshalling(t *testing.T) {
	acc := account.Account{0xaa, 0xbb, 0xcc}

	buffer, err := json.Marshal(acc)
	assert.Nil(t, err, "wrong Marshal")

	var decoded account.Account
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "wrong Unmarshal")
	assert.Equal(t, acc, decoded, "wrong JSON round trip")
}

func TestIsZero(t *testing.T) {
	var zero account.Account
	assert.True(t, zero.IsZero(), "zero account not detected")

	acc := account.Account{0x01}
	assert.False(t, acc.IsZero(), "non-zero account detected as zero")
}
