// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custodian - the buyback engine
//
// holds a pool of native value and buys collectibles and fungible
// tokens from any caller at the fixed owner-configured price, taking
// the items into custody and paying the seller in the same database
// transaction.
//
// every guarded operation is protected by a single exclusive entry
// flag: while one operation is executing no other may begin, even
// through the nested receipt callback path; violations are rejected
// outright, never queued.
package custodian

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/registry"
	"github.com/bitmark-inc/buybackd/storage"
)

// AssetReference - one collectible offered for sale
type AssetReference struct {
	Collection registry.CollectionId `json:"collection"`
	AssetId    registry.AssetId      `json:"assetId"`
}

// TokenTransfer - one fungible pull request
type TokenTransfer struct {
	Token  registry.TokenId `json:"token"`
	Amount uint64           `json:"amount"`
}

// HarvestInfo - result of a successful sell operation
type HarvestInfo struct {
	Payout      uint64 `json:"payout"`
	PoolBalance uint64 `json:"poolBalance"`
	EventId     uint64 `json:"eventId"`
}

// DepositInfo - result of a successful deposit
type DepositInfo struct {
	PoolBalance uint64 `json:"poolBalance"`
	EventId     uint64 `json:"eventId"`
}

// WithdrawInfo - result of a successful withdrawal
type WithdrawInfo struct {
	PoolBalance uint64 `json:"poolBalance"`
	EventId     uint64 `json:"eventId"`
}

// StatusInfo - snapshot of the custodian
type StatusInfo struct {
	State       string `json:"state"`
	PoolBalance uint64 `json:"poolBalance"`
	UnitPrice   uint64 `json:"unitPrice"`
	Holdings    uint64 `json:"holdings"`
	Events      uint64 `json:"events"`
}

// Custodian - the full operation set, also the mockable surface for
// the RPC layer
type Custodian interface {
	SellAssets(caller account.Account, assets []AssetReference) (*HarvestInfo, error)
	SellFungibles(caller account.Account, transfers []TokenTransfer) (*HarvestInfo, error)
	Deposit(caller account.Account, amount uint64) (*DepositInfo, error)
	Withdraw(caller account.Account, recipient account.Account, amount uint64) (*WithdrawInfo, error)
	Pause(caller account.Account) error
	Resume(caller account.Account) error
	Status() (*StatusInfo, error)
	ListEvents(start uint64, count int) ([]Event, error)
}

// key in the state pool holding the persisted pause flag
var pausedKey = []byte("custodian.paused")

// key in the state pool counting assets currently in custody
var holdingsKey = []byte("custodian.holdings")

type custodianData struct {
	sync.Mutex // protects the entry flag and the event sequence
	log        *logger.L

	owner     account.Account
	custodian account.Account
	unitPrice uint64

	provenance *storage.PoolHandle
	holdings   *storage.PoolHandle
	events     *storage.PoolHandle
	state      *storage.PoolHandle

	// next audit event sequence number
	sequence uint64

	// the reentrancy guard
	entered bool

	// set once during initialise
	initialised bool
}

var globalData custodianData

// Config - static settings of the custodian
type Config struct {
	Owner     account.Account
	Custodian account.Account
	UnitPrice uint64
}

// Handles - the storage pools the custodian operates on
type Handles struct {
	Provenance *storage.PoolHandle
	Holdings   *storage.PoolHandle
	Events     *storage.PoolHandle
	State      *storage.PoolHandle
}

// Initialise - set up the custodian and hook it into the registry as
// the receipt-acknowledging recipient of asset transfers
func Initialise(config Config, handles Handles) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("custodian")
	globalData.log.Info("starting…")

	if config.Owner.IsZero() || config.Custodian.IsZero() {
		return fault.MissingParameters
	}

	globalData.owner = config.Owner
	globalData.custodian = config.Custodian
	globalData.unitPrice = config.UnitPrice

	globalData.provenance = handles.Provenance
	globalData.holdings = handles.Holdings
	globalData.events = handles.Events
	globalData.state = handles.State

	globalData.sequence = 0
	if last, found := handles.Events.LastElement(); found {
		globalData.sequence = sequenceFromKey(last.Key)
	}

	registry.RegisterReceiver(config.Custodian, &globalData)

	globalData.log.Infof("owner: %s", config.Owner)
	globalData.log.Infof("custodian: %s", config.Custodian)
	globalData.log.Infof("unit price: %d", config.UnitPrice)

	globalData.entered = false
	globalData.initialised = true
	return nil
}

// Finalise - shut down the custodian
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Get - the global custodian instance
func Get() Custodian {
	return &globalData
}

// WasPaused - read the persisted pause flag before mode start up
func WasPaused(state *storage.PoolHandle) bool {
	return state.Has(pausedKey)
}

// acquire the exclusive entry flag
func (c *custodianData) enter() error {
	c.Lock()
	defer c.Unlock()

	if !c.initialised {
		return fault.NotInitialised
	}
	if c.entered {
		return fault.ReentrantCall
	}
	c.entered = true
	return nil
}

// release the entry flag, valid on every exit path
func (c *custodianData) leave() {
	c.Lock()
	c.entered = false
	c.Unlock()
}
