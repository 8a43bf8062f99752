// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/registry"
	"github.com/bitmark-inc/buybackd/rpc/fixtures"
	"github.com/bitmark-inc/buybackd/storage"
)

var (
	collectionHex = strings.Repeat("11", 32)
	plainHex      = strings.Repeat("22", 32) // registered without the capability
	tokenHex      = strings.Repeat("33", 32)
	unknownHex    = strings.Repeat("ff", 32)
)

func setup(t *testing.T) func() {
	t.Helper()

	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "registry-test")
	if err != nil {
		t.Fatalf("tempdir error: %v", err)
	}

	err = storage.Initialise(filepath.Join(dir, "test-data.leveldb"), storage.ReadWrite)
	if err != nil {
		t.Fatalf("storage initialise error: %v", err)
	}

	err = registry.Initialise(
		registry.Handles{
			Collections: storage.Pool.Collections,
			Tokens:      storage.Pool.Tokens,
			Owners:      storage.Pool.Owners,
			Balances:    storage.Pool.Balances,
			Allowances:  storage.Pool.Allowances,
		},
		[]registry.CollectionConfig{
			{Identifier: collectionHex, Name: "artwork", NonFungible: true},
			{Identifier: plainHex, Name: "broken", NonFungible: false},
		},
		[]registry.TokenConfig{
			{Identifier: tokenHex, Name: "points"},
		},
	)
	if err != nil {
		t.Fatalf("registry initialise error: %v", err)
	}

	return func() {
		registry.Finalise()
		storage.Finalise()
		os.RemoveAll(dir)
		fixtures.TeardownTestLogger()
	}
}

func mustCollection(t *testing.T, s string) registry.CollectionId {
	t.Helper()
	c, err := registry.CollectionIdFromString(s)
	if err != nil {
		t.Fatalf("bad collection fixture: %v", err)
	}
	return c
}

func mustToken(t *testing.T, s string) registry.TokenId {
	t.Helper()
	tok, err := registry.TokenIdFromString(s)
	if err != nil {
		t.Fatalf("bad token fixture: %v", err)
	}
	return tok
}

func TestCapabilityProbe(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	assert.Nil(t, registry.IsNonFungible(mustCollection(t, collectionHex)))
	assert.Equal(t, fault.UnsupportedCollection, registry.IsNonFungible(mustCollection(t, plainHex)))
	assert.Equal(t, fault.UnsupportedCollection, registry.IsNonFungible(mustCollection(t, unknownHex)))

	// memoised second probe
	assert.Nil(t, registry.IsNonFungible(mustCollection(t, collectionHex)))
	assert.Equal(t, fault.UnsupportedCollection, registry.IsNonFungible(mustCollection(t, unknownHex)))
}

func TestIssueAndOwner(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	collection := mustCollection(t, collectionHex)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	defer trx.Discard()

	_, err = registry.AssetOwner(trx, collection, 7)
	assert.Equal(t, fault.AssetNotFound, err, "wrong error")

	err = registry.Issue(trx, collection, 7, fixtures.SellerAccount)
	assert.Nil(t, err, "issue error")

	owner, err := registry.AssetOwner(trx, collection, 7)
	assert.Nil(t, err, "owner error")
	assert.Equal(t, fixtures.SellerAccount, owner, "wrong owner")

	err = registry.Issue(trx, collection, 7, fixtures.BuyerAccount)
	assert.Equal(t, fault.AssetAlreadyIssued, err, "wrong error")

	err = registry.Issue(trx, mustCollection(t, plainHex), 7, fixtures.SellerAccount)
	assert.Equal(t, fault.UnsupportedCollection, err, "wrong error")
}

type recorder struct {
	calls    int
	lastFrom account.Account
	fail     error
}

func (r *recorder) AssetReceived(trx storage.Transaction, operator account.Account, from account.Account, collection registry.CollectionId, asset registry.AssetId) error {
	r.calls += 1
	r.lastFrom = from
	return r.fail
}

func TestTransferAsset(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	collection := mustCollection(t, collectionHex)

	receiver := &recorder{}
	registry.RegisterReceiver(fixtures.CustodianAccount, receiver)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	defer trx.Discard()

	err = registry.Issue(trx, collection, 1, fixtures.SellerAccount)
	assert.Nil(t, err, "issue error")

	// only the current owner may authorise the transfer
	err = registry.TransferAsset(trx, fixtures.BuyerAccount, collection, 1, fixtures.BuyerAccount, fixtures.CustodianAccount)
	assert.Equal(t, fault.NotAssetOwner, err, "wrong error")
	assert.Equal(t, 0, receiver.calls, "callback fired on failed transfer")

	err = registry.TransferAsset(trx, fixtures.CustodianAccount, collection, 1, fixtures.SellerAccount, fixtures.CustodianAccount)
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, 1, receiver.calls, "callback not fired")
	assert.Equal(t, fixtures.SellerAccount, receiver.lastFrom, "wrong previous owner")

	owner, err := registry.AssetOwner(trx, collection, 1)
	assert.Nil(t, err, "owner error")
	assert.Equal(t, fixtures.CustodianAccount, owner, "custody not recorded")
}

func TestTransferAssetRejectedByReceiver(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	collection := mustCollection(t, collectionHex)

	receiver := &recorder{fail: fault.UnrecognisedProvenance}
	registry.RegisterReceiver(fixtures.CustodianAccount, receiver)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	defer trx.Discard()

	err = registry.Issue(trx, collection, 2, fixtures.SellerAccount)
	assert.Nil(t, err, "issue error")

	err = registry.TransferAsset(trx, fixtures.CustodianAccount, collection, 2, fixtures.SellerAccount, fixtures.CustodianAccount)
	assert.Equal(t, fault.UnrecognisedProvenance, err, "wrong error")
}

func TestFungibleTransfer(t *testing.T) {
	teardown := setup(t)
	defer teardown()

	token := mustToken(t, tokenHex)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	defer trx.Discard()

	err = registry.Mint(trx, token, fixtures.SellerAccount, 100)
	assert.Nil(t, err, "mint error")
	assert.Equal(t, uint64(100), registry.TokenBalance(trx, token, fixtures.SellerAccount))

	// spender needs an allowance
	err = registry.TransferTokens(trx, token, fixtures.CustodianAccount, fixtures.SellerAccount, fixtures.CustodianAccount, 40)
	assert.Equal(t, fault.InsufficientAllowance, err, "wrong error")

	err = registry.Approve(trx, token, fixtures.SellerAccount, fixtures.CustodianAccount, 50)
	assert.Nil(t, err, "approve error")
	assert.Equal(t, uint64(50), registry.Allowance(trx, token, fixtures.SellerAccount, fixtures.CustodianAccount))

	err = registry.TransferTokens(trx, token, fixtures.CustodianAccount, fixtures.SellerAccount, fixtures.CustodianAccount, 40)
	assert.Nil(t, err, "transfer error")

	assert.Equal(t, uint64(60), registry.TokenBalance(trx, token, fixtures.SellerAccount))
	assert.Equal(t, uint64(40), registry.TokenBalance(trx, token, fixtures.CustodianAccount))
	assert.Equal(t, uint64(10), registry.Allowance(trx, token, fixtures.SellerAccount, fixtures.CustodianAccount))

	// owner moving own tokens needs no allowance
	err = registry.TransferTokens(trx, token, fixtures.SellerAccount, fixtures.SellerAccount, fixtures.BuyerAccount, 10)
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, uint64(50), registry.TokenBalance(trx, token, fixtures.SellerAccount))

	// more than the remaining balance
	err = registry.TransferTokens(trx, token, fixtures.SellerAccount, fixtures.SellerAccount, fixtures.BuyerAccount, 51)
	assert.Equal(t, fault.InsufficientTokens, err, "wrong error")

	err = registry.Mint(trx, mustToken(t, unknownHex), fixtures.SellerAccount, 1)
	assert.Equal(t, fault.UnsupportedToken, err, "wrong error")
}
