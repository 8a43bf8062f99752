// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the asset-side collaborators of the custodian
//
// two registries are provided over the shared database:
//
//  1. non-fungible collections: per-asset ownership with an
//     owner-authorised transfer that notifies the recipient through a
//     receipt callback
//  2. fungible tokens: balance and allowance accounting with
//     transfer-from semantics
//
// the set of accepted collections and tokens is fixed at startup from
// the configuration file
package registry

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/storage"
)

// capability flags stored in the first byte of a collection record
const (
	capabilityNonFungible = 0x01
)

// probe results are immutable for the life of the process but the
// cache keeps memory bounded if many unknown identifiers are probed
const (
	probeCacheExpiry  = time.Hour
	probeCacheCleanup = 2 * time.Hour
)

// CollectionConfig - one accepted collection from the configuration
type CollectionConfig struct {
	Identifier  string `gluamapper:"identifier" json:"identifier"`
	Name        string `gluamapper:"name" json:"name"`
	NonFungible bool   `gluamapper:"non_fungible" json:"non_fungible"`
}

// TokenConfig - one accepted fungible token from the configuration
type TokenConfig struct {
	Identifier string `gluamapper:"identifier" json:"identifier"`
	Name       string `gluamapper:"name" json:"name"`
}

// AssetReceiver - receipt acknowledgment contract
//
// invoked by TransferAsset after ownership has moved but before the
// transfer is considered complete; returning an error aborts the
// transfer and with it the enclosing transaction
type AssetReceiver interface {
	AssetReceived(trx storage.Transaction, operator account.Account, from account.Account, collection CollectionId, asset AssetId) error
}

var globalData struct {
	sync.RWMutex
	log *logger.L

	collections *storage.PoolHandle
	tokens      *storage.PoolHandle
	owners      *storage.PoolHandle
	balances    *storage.PoolHandle
	allowances  *storage.PoolHandle

	probeCache *gocache.Cache
	receivers  map[account.Account]AssetReceiver

	// set once during initialise
	initialised bool
}

// Handles - the storage pools the registry operates on
type Handles struct {
	Collections *storage.PoolHandle
	Tokens      *storage.PoolHandle
	Owners      *storage.PoolHandle
	Balances    *storage.PoolHandle
	Allowances  *storage.PoolHandle
}

// Initialise - store the accepted collections and tokens
func Initialise(handles Handles, collections []CollectionConfig, tokens []TokenConfig) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	globalData.collections = handles.Collections
	globalData.tokens = handles.Tokens
	globalData.owners = handles.Owners
	globalData.balances = handles.Balances
	globalData.allowances = handles.Allowances

	globalData.probeCache = gocache.New(probeCacheExpiry, probeCacheCleanup)
	globalData.receivers = make(map[account.Account]AssetReceiver)

	for _, c := range collections {
		collection, err := CollectionIdFromString(c.Identifier)
		if err != nil {
			return err
		}

		capability := byte(0)
		if c.NonFungible {
			capability = capabilityNonFungible
		}

		record := make([]byte, 0, 1+len(c.Name))
		record = append(record, capability)
		record = append(record, c.Name...)

		globalData.log.Infof("collection: %s  %q", collection, c.Name)
		handles.Collections.Put(collection[:], record)
	}

	for _, t := range tokens {
		token, err := TokenIdFromString(t.Identifier)
		if err != nil {
			return err
		}

		globalData.log.Infof("token: %s  %q", token, t.Name)
		handles.Tokens.Put(token[:], []byte(t.Name))
	}

	globalData.initialised = true
	return nil
}

// Finalise - shut down the registry
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.probeCache = nil
	globalData.receivers = nil
	globalData.initialised = false
	return nil
}

// RegisterReceiver - attach a receipt callback to a custody account
func RegisterReceiver(custody account.Account, receiver AssetReceiver) {
	globalData.Lock()
	globalData.receivers[custody] = receiver
	globalData.Unlock()
}

// key helpers

func assetKey(collection CollectionId, asset AssetId) []byte {
	key := make([]byte, 0, IdentifierLength+8)
	key = append(key, collection[:]...)
	key = append(key, asset.Bytes()...)
	return key
}

func balanceKey(token TokenId, owner account.Account) []byte {
	key := make([]byte, 0, IdentifierLength+account.AccountSize)
	key = append(key, token[:]...)
	key = append(key, owner.Bytes()...)
	return key
}

func allowanceKey(token TokenId, owner account.Account, spender account.Account) []byte {
	key := make([]byte, 0, IdentifierLength+2*account.AccountSize)
	key = append(key, token[:]...)
	key = append(key, owner.Bytes()...)
	key = append(key, spender.Bytes()...)
	return key
}
