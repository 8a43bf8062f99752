// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custodian_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/custodian"
	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/ledger"
	"github.com/bitmark-inc/buybackd/mode"
	"github.com/bitmark-inc/buybackd/registry"
	"github.com/bitmark-inc/buybackd/rpc/fixtures"
	"github.com/bitmark-inc/buybackd/storage"
)

const unitPrice = 10

var (
	collectionHex = strings.Repeat("11", 32)
	plainHex      = strings.Repeat("22", 32) // registered without the capability
	tokenHex      = strings.Repeat("33", 32)
)

var (
	testCollection registry.CollectionId
	testPlain      registry.CollectionId
	testToken      registry.TokenId
)

func init() {
	testCollection, _ = registry.CollectionIdFromString(collectionHex)
	testPlain, _ = registry.CollectionIdFromString(plainHex)
	testToken, _ = registry.TokenIdFromString(tokenHex)
}

// bring up the whole engine with a funded pool and some assets and
// tokens issued to the seller
func setup(t *testing.T, poolBalance uint64, sellerAssets []registry.AssetId) func() {
	t.Helper()

	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "custodian-test")
	if err != nil {
		t.Fatalf("tempdir error: %v", err)
	}

	err = storage.Initialise(filepath.Join(dir, "test-data.leveldb"), storage.ReadWrite)
	if err != nil {
		t.Fatalf("storage initialise error: %v", err)
	}

	err = mode.Initialise(false)
	if err != nil {
		t.Fatalf("mode initialise error: %v", err)
	}

	err = ledger.Initialise(storage.Pool.Accounts, storage.Pool.State, map[account.Account]uint64{
		fixtures.CustodianAccount: poolBalance,
		fixtures.BuyerAccount:     1000,
	})
	if err != nil {
		t.Fatalf("ledger initialise error: %v", err)
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

	err = custodian.Initialise(
		custodian.Config{
			Owner:     fixtures.OwnerAccount,
			Custodian: fixtures.CustodianAccount,
			UnitPrice: unitPrice,
		},
		custodian.Handles{
			Provenance: storage.Pool.Provenance,
			Holdings:   storage.Pool.Holdings,
			Events:     storage.Pool.Events,
			State:      storage.Pool.State,
		},
	)
	if err != nil {
		t.Fatalf("custodian initialise error: %v", err)
	}

	if len(sellerAssets) > 0 {
		trx, err := storage.NewDBTransaction()
		if err != nil {
			t.Fatalf("transaction error: %v", err)
		}
		for _, asset := range sellerAssets {
			err = registry.Issue(trx, testCollection, asset, fixtures.SellerAccount)
			if err != nil {
				t.Fatalf("issue error: %v", err)
			}
		}
		err = trx.Commit()
		if err != nil {
			t.Fatalf("commit error: %v", err)
		}
	}

	return func() {
		custodian.Finalise()
		registry.Finalise()
		ledger.Finalise()
		mode.Finalise()
		storage.Finalise()
		os.RemoveAll(dir)
		fixtures.TeardownTestLogger()
	}
}

// committed owner of an asset, outside any transaction
func committedOwner(t *testing.T, asset registry.AssetId) account.Account {
	t.Helper()

	trx, err := storage.NewDBTransaction()
	if err != nil {
		t.Fatalf("transaction error: %v", err)
	}
	defer trx.Discard()

	owner, err := registry.AssetOwner(trx, testCollection, asset)
	if err != nil {
		t.Fatalf("owner error: %v", err)
	}
	return owner
}

func TestSellAssets(t *testing.T) {
	teardown := setup(t, 5*unitPrice, []registry.AssetId{1, 2, 3, 4, 5})
	defer teardown()

	c := custodian.Get()

	assets := []custodian.AssetReference{
		{Collection: testCollection, AssetId: 1},
		{Collection: testCollection, AssetId: 2},
		{Collection: testCollection, AssetId: 3},
		{Collection: testCollection, AssetId: 4},
		{Collection: testCollection, AssetId: 5},
	}

	info, err := c.SellAssets(fixtures.SellerAccount, assets)
	assert.Nil(t, err, "sell error")
	assert.Equal(t, uint64(5*unitPrice), info.Payout, "wrong payout")
	assert.Equal(t, uint64(0), info.PoolBalance, "pool not emptied")

	// every asset is in custody and the seller was paid
	for _, asset := range assets {
		assert.Equal(t, fixtures.CustodianAccount, committedOwner(t, asset.AssetId), "custody not recorded")
	}
	assert.Equal(t, uint64(5*unitPrice), ledger.CommittedBalance(fixtures.SellerAccount), "seller not paid")

	// one event carrying the full list in input order
	events, err := c.ListEvents(0, 10)
	assert.Nil(t, err, "events error")
	assert.Equal(t, 1, len(events), "wrong event count")
	assert.Equal(t, custodian.EventAssetsHarvested, events[0].Type, "wrong event type")
	assert.Equal(t, fixtures.SellerAccount.String(), events[0].Account, "wrong event account")
	assert.Equal(t, assets, events[0].Assets, "wrong event assets")

	status, err := c.Status()
	assert.Nil(t, err, "status error")
	assert.Equal(t, uint64(5), status.Holdings, "wrong holdings count")
	assert.Equal(t, uint64(1), status.Events, "wrong event height")
}

func TestSellAssetsInsufficientPool(t *testing.T) {
	teardown := setup(t, 3*unitPrice, []registry.AssetId{1, 2, 3, 4})
	defer teardown()

	c := custodian.Get()

	_, err := c.SellAssets(fixtures.SellerAccount, []custodian.AssetReference{
		{Collection: testCollection, AssetId: 1},
		{Collection: testCollection, AssetId: 2},
		{Collection: testCollection, AssetId: 3},
		{Collection: testCollection, AssetId: 4},
	})
	assert.Equal(t, fault.InsufficientPoolBalance, err, "wrong error")

	// no state changed
	assert.Equal(t, uint64(3*unitPrice), ledger.CommittedBalance(fixtures.CustodianAccount), "pool changed")
	assert.Equal(t, fixtures.SellerAccount, committedOwner(t, 1), "ownership changed")

	events, err := c.ListEvents(0, 10)
	assert.Nil(t, err, "events error")
	assert.Equal(t, 0, len(events), "unexpected events")
}

func TestSellAssetsEmptyList(t *testing.T) {
	teardown := setup(t, 5*unitPrice, nil)
	defer teardown()

	_, err := custodian.Get().SellAssets(fixtures.SellerAccount, nil)
	assert.Equal(t, fault.EmptyAssetList, err, "wrong error")
}

func TestSellAssetsNotOwnerAbortsBatch(t *testing.T) {
	teardown := setup(t, 5*unitPrice, []registry.AssetId{1, 2})
	defer teardown()

	// asset 3 belongs to someone else
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	err = registry.Issue(trx, testCollection, 3, fixtures.BuyerAccount)
	assert.Nil(t, err, "issue error")
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	_, err = custodian.Get().SellAssets(fixtures.SellerAccount, []custodian.AssetReference{
		{Collection: testCollection, AssetId: 1},
		{Collection: testCollection, AssetId: 2},
		{Collection: testCollection, AssetId: 3},
	})
	assert.Equal(t, fault.NotAssetOwner, err, "wrong error")

	// assets listed before the bad one did not move either
	assert.Equal(t, fixtures.SellerAccount, committedOwner(t, 1), "batch not atomic")
	assert.Equal(t, fixtures.SellerAccount, committedOwner(t, 2), "batch not atomic")
	assert.Equal(t, uint64(5*unitPrice), ledger.CommittedBalance(fixtures.CustodianAccount), "pool changed")
}

func TestSellAssetsUnsupportedCollection(t *testing.T) {
	teardown := setup(t, 5*unitPrice, nil)
	defer teardown()

	_, err := custodian.Get().SellAssets(fixtures.SellerAccount, []custodian.AssetReference{
		{Collection: testPlain, AssetId: 1},
	})
	assert.Equal(t, fault.UnsupportedCollection, err, "wrong error")
}

func TestUnsolicitedTransferRejected(t *testing.T) {
	teardown := setup(t, 5*unitPrice, []registry.AssetId{1})
	defer teardown()

	// a direct registry transfer into custody, not initiated by the
	// custodian, carries no provenance record
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	defer trx.Discard()

	err = registry.TransferAsset(trx, fixtures.SellerAccount, testCollection, 1, fixtures.SellerAccount, fixtures.CustodianAccount)
	assert.Equal(t, fault.UnrecognisedProvenance, err, "wrong error")
	trx.Discard()

	assert.Equal(t, fixtures.SellerAccount, committedOwner(t, 1), "unsolicited transfer accepted")
}

func sellerTokens(t *testing.T, balance uint64, allowance uint64) {
	t.Helper()

	trx, err := storage.NewDBTransaction()
	if err != nil {
		t.Fatalf("transaction error: %v", err)
	}
	err = registry.Mint(trx, testToken, fixtures.SellerAccount, balance)
	if err != nil {
		t.Fatalf("mint error: %v", err)
	}
	if allowance > 0 {
		err = registry.Approve(trx, testToken, fixtures.SellerAccount, fixtures.CustodianAccount, allowance)
		if err != nil {
			t.Fatalf("approve error: %v", err)
		}
	}
	err = trx.Commit()
	if err != nil {
		t.Fatalf("commit error: %v", err)
	}
}

func TestSellFungibles(t *testing.T) {
	teardown := setup(t, 5*unitPrice, nil)
	defer teardown()

	sellerTokens(t, 100, 100)

	c := custodian.Get()

	transfers := []custodian.TokenTransfer{
		{Token: testToken, Amount: 30},
		{Token: testToken, Amount: 20},
	}

	info, err := c.SellFungibles(fixtures.SellerAccount, transfers)
	assert.Nil(t, err, "sell error")

	// flat price regardless of list length
	assert.Equal(t, uint64(unitPrice), info.Payout, "wrong payout")
	assert.Equal(t, uint64(4*unitPrice), info.PoolBalance, "wrong pool")
	assert.Equal(t, uint64(unitPrice), ledger.CommittedBalance(fixtures.SellerAccount), "seller not paid")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	defer trx.Discard()
	assert.Equal(t, uint64(50), registry.TokenBalance(trx, testToken, fixtures.CustodianAccount), "tokens not pulled")
	assert.Equal(t, uint64(50), registry.TokenBalance(trx, testToken, fixtures.SellerAccount), "seller balance wrong")
	trx.Discard()

	events, err := c.ListEvents(0, 10)
	assert.Nil(t, err, "events error")
	assert.Equal(t, 1, len(events), "wrong event count")
	assert.Equal(t, custodian.EventFungiblesHarvested, events[0].Type, "wrong event type")
	assert.Equal(t, transfers, events[0].Transfers, "wrong event transfers")
}

func TestSellFungiblesInsufficientAllowance(t *testing.T) {
	teardown := setup(t, 5*unitPrice, nil)
	defer teardown()

	sellerTokens(t, 100, 25)

	_, err := custodian.Get().SellFungibles(fixtures.SellerAccount, []custodian.TokenTransfer{
		{Token: testToken, Amount: 30},
	})
	assert.Equal(t, fault.InsufficientAllowance, err, "wrong error")

	assert.Equal(t, uint64(5*unitPrice), ledger.CommittedBalance(fixtures.CustodianAccount), "pool changed")
}

func TestSellFungiblesEmptyList(t *testing.T) {
	teardown := setup(t, 5*unitPrice, nil)
	defer teardown()

	_, err := custodian.Get().SellFungibles(fixtures.SellerAccount, nil)
	assert.Equal(t, fault.EmptyFungibleList, err, "wrong error")
}

func TestDeposit(t *testing.T) {
	teardown := setup(t, 0, nil)
	defer teardown()

	c := custodian.Get()

	_, err := c.Deposit(fixtures.BuyerAccount, 0)
	assert.Equal(t, fault.ZeroValue, err, "wrong error")

	info, err := c.Deposit(fixtures.BuyerAccount, 300)
	assert.Nil(t, err, "deposit error")
	assert.Equal(t, uint64(300), info.PoolBalance, "wrong pool")
	assert.Equal(t, uint64(700), ledger.CommittedBalance(fixtures.BuyerAccount), "depositor not debited")

	events, err := c.ListEvents(0, 10)
	assert.Nil(t, err, "events error")
	assert.Equal(t, 1, len(events), "wrong event count")
	assert.Equal(t, custodian.EventDeposit, events[0].Type, "wrong event type")
	assert.Equal(t, uint64(300), events[0].Amount, "wrong event amount")
}

func TestWithdraw(t *testing.T) {
	teardown := setup(t, 500, nil)
	defer teardown()

	c := custodian.Get()

	_, err := c.Withdraw(fixtures.SellerAccount, fixtures.SellerAccount, 100)
	assert.Equal(t, fault.NotCustodianOwner, err, "wrong error")

	_, err = c.Withdraw(fixtures.OwnerAccount, fixtures.OwnerAccount, 0)
	assert.Equal(t, fault.ZeroAmount, err, "wrong error")

	_, err = c.Withdraw(fixtures.OwnerAccount, fixtures.CustodianAccount, 100)
	assert.Equal(t, fault.WithdrawToSelf, err, "wrong error")

	_, err = c.Withdraw(fixtures.OwnerAccount, fixtures.OwnerAccount, 501)
	assert.Equal(t, fault.InsufficientValue, err, "wrong error")

	info, err := c.Withdraw(fixtures.OwnerAccount, fixtures.OwnerAccount, 200)
	assert.Nil(t, err, "withdraw error")
	assert.Equal(t, uint64(300), info.PoolBalance, "wrong pool")
	assert.Equal(t, uint64(200), ledger.CommittedBalance(fixtures.OwnerAccount), "owner not credited")

	info, err = c.Withdraw(fixtures.OwnerAccount, fixtures.BuyerAccount, 50)
	assert.Nil(t, err, "withdraw error")
	assert.Equal(t, uint64(250), info.PoolBalance, "wrong pool")

	// the audit record carries the initiating owner and the recipient
	events, err := c.ListEvents(0, 10)
	assert.Nil(t, err, "list events error")
	assert.Equal(t, 2, len(events), "wrong event count")
	assert.Equal(t, custodian.EventWithdraw, events[1].Type, "wrong event type")
	assert.Equal(t, fixtures.OwnerAccount.String(), events[1].Account, "wrong event account")
	assert.Equal(t, fixtures.BuyerAccount.String(), events[1].Recipient, "wrong event recipient")
}

func TestStatusDuringDeposits(t *testing.T) {
	teardown := setup(t, 500, nil)
	defer teardown()

	c := custodian.Get()

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			_, err := c.Status()
			assert.Nil(t, err, "status error")
		}
	}()

	const deposits = 100
	for i := 0; i < deposits; i += 1 {
		_, err := c.Deposit(fixtures.BuyerAccount, 1)
		assert.Nil(t, err, "deposit error")
	}
	close(done)
	wg.Wait()

	status, err := c.Status()
	assert.Nil(t, err, "status error")
	assert.Equal(t, uint64(deposits), status.Events, "wrong event sequence")
	assert.Equal(t, uint64(600), status.PoolBalance, "wrong pool")
}

func TestPauseResume(t *testing.T) {
	teardown := setup(t, 500, []registry.AssetId{1})
	defer teardown()

	c := custodian.Get()

	err := c.Pause(fixtures.SellerAccount)
	assert.Equal(t, fault.NotCustodianOwner, err, "wrong error")

	err = c.Resume(fixtures.OwnerAccount)
	assert.Equal(t, fault.NotPaused, err, "wrong error")

	err = c.Pause(fixtures.OwnerAccount)
	assert.Nil(t, err, "pause error")
	assert.True(t, mode.Is(mode.Paused), "not paused")
	assert.True(t, custodian.WasPaused(storage.Pool.State), "pause not persisted")

	err = c.Pause(fixtures.OwnerAccount)
	assert.Equal(t, fault.AlreadyPaused, err, "wrong error")

	// intake stops
	_, err = c.SellAssets(fixtures.SellerAccount, []custodian.AssetReference{
		{Collection: testCollection, AssetId: 1},
	})
	assert.Equal(t, fault.NotAvailableWhenPaused, err, "wrong error")

	_, err = c.SellFungibles(fixtures.SellerAccount, []custodian.TokenTransfer{
		{Token: testToken, Amount: 1},
	})
	assert.Equal(t, fault.NotAvailableWhenPaused, err, "wrong error")

	_, err = c.Deposit(fixtures.BuyerAccount, 100)
	assert.Equal(t, fault.NotAvailableWhenPaused, err, "wrong error")

	// administration continues
	_, err = c.Withdraw(fixtures.OwnerAccount, fixtures.OwnerAccount, 100)
	assert.Nil(t, err, "withdraw while paused failed")

	err = c.Resume(fixtures.OwnerAccount)
	assert.Nil(t, err, "resume error")
	assert.True(t, mode.Is(mode.Active), "not active")
	assert.False(t, custodian.WasPaused(storage.Pool.State), "pause flag not cleared")

	_, err = c.Deposit(fixtures.BuyerAccount, 100)
	assert.Nil(t, err, "deposit after resume failed")
}

// a receiver wrapper that tries to re-enter a guarded operation from
// inside the nested receipt callback
type reentering struct {
	inner  registry.AssetReceiver
	nested error
}

func (r *reentering) AssetReceived(trx storage.Transaction, operator account.Account, from account.Account, collection registry.CollectionId, asset registry.AssetId) error {
	_, r.nested = custodian.Get().Deposit(from, 1)
	return r.inner.AssetReceived(trx, operator, from, collection, asset)
}

func TestReentrantCallRejected(t *testing.T) {
	teardown := setup(t, 5*unitPrice, []registry.AssetId{1})
	defer teardown()

	wrapper := &reentering{
		inner: custodian.Get().(registry.AssetReceiver),
	}
	registry.RegisterReceiver(fixtures.CustodianAccount, wrapper)

	info, err := custodian.Get().SellAssets(fixtures.SellerAccount, []custodian.AssetReference{
		{Collection: testCollection, AssetId: 1},
	})

	// the outer sale completes, the nested attempt is rejected
	assert.Nil(t, err, "sell error")
	assert.Equal(t, uint64(unitPrice), info.Payout, "wrong payout")
	assert.Equal(t, fault.ReentrantCall, wrapper.nested, "nested call not rejected")
}

func TestListEventsRange(t *testing.T) {
	teardown := setup(t, 0, nil)
	defer teardown()

	c := custodian.Get()

	for i := 0; i < 3; i += 1 {
		_, err := c.Deposit(fixtures.BuyerAccount, 10)
		assert.Nil(t, err, "deposit error")
	}

	events, err := c.ListEvents(0, 10)
	assert.Nil(t, err, "events error")
	assert.Equal(t, 3, len(events), "wrong event count")
	assert.Equal(t, uint64(1), events[0].Sequence, "wrong first sequence")

	events, err = c.ListEvents(3, 10)
	assert.Nil(t, err, "events error")
	assert.Equal(t, 1, len(events), "wrong event count")
	assert.Equal(t, uint64(3), events[0].Sequence, "wrong sequence")

	_, err = c.ListEvents(0, 0)
	assert.Equal(t, fault.InvalidCount, err, "wrong error")
}
