// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/storage"
)

// IsNonFungible - capability probe for a collection
//
// returns fault.UnsupportedCollection unless the collection is known
// and declares the non-fungible contract; results are memoised
func IsNonFungible(collection CollectionId) error {

	cacheKey := collection.String()
	if cached, ok := globalData.probeCache.Get(cacheKey); ok {
		if e, ok := cached.(error); ok {
			return e
		}
		return nil
	}

	result := probe(collection)

	// go-cache cannot store an untyped nil through its interface
	// value so a sentinel stands in for success
	globalData.probeCache.Set(cacheKey, result, 0)
	if e, ok := result.(error); ok {
		return e
	}
	return nil
}

func probe(collection CollectionId) interface{} {
	record := globalData.collections.Get(collection[:])
	if nil == record || len(record) < 1 {
		return error(fault.UnsupportedCollection)
	}
	if 0 == record[0]&capabilityNonFungible {
		return error(fault.UnsupportedCollection)
	}
	return "ok"
}

// AssetOwner - current owner of one collectible
func AssetOwner(trx storage.Transaction, collection CollectionId, asset AssetId) (account.Account, error) {
	var owner account.Account

	record := trx.Get(globalData.owners, assetKey(collection, asset))
	if nil == record {
		return owner, fault.AssetNotFound
	}
	if account.AccountSize != len(record) {
		return owner, fault.InvalidItem
	}

	copy(owner[:], record)
	return owner, nil
}

// Issue - mint one collectible to an owner
//
// the asset identifier must be unused within its collection
func Issue(trx storage.Transaction, collection CollectionId, asset AssetId, owner account.Account) error {

	err := IsNonFungible(collection)
	if err != nil {
		return err
	}
	if owner.IsZero() {
		return fault.InvalidItem
	}

	key := assetKey(collection, asset)
	if trx.Has(globalData.owners, key) {
		return fault.AssetAlreadyIssued
	}

	globalData.log.Infof("issue: %s/%d → %s", collection, asset, owner)
	trx.Put(globalData.owners, key, owner.Bytes())
	return nil
}

// TransferAsset - owner-authorised transfer of one collectible
//
// ownership moves inside the supplied transaction and the recipient's
// receipt callback, when registered, runs nested before this returns;
// a callback error aborts the transfer
func TransferAsset(trx storage.Transaction, operator account.Account, collection CollectionId, asset AssetId, from account.Account, to account.Account) error {

	owner, err := AssetOwner(trx, collection, asset)
	if err != nil {
		return err
	}
	if owner != from {
		return fault.NotAssetOwner
	}

	trx.Put(globalData.owners, assetKey(collection, asset), to.Bytes())

	globalData.RLock()
	receiver := globalData.receivers[to]
	globalData.RUnlock()

	if nil != receiver {
		err = receiver.AssetReceived(trx, operator, from, collection, asset)
		if err != nil {
			globalData.log.Warnf("transfer rejected by recipient: %s/%d: %s", collection, asset, err)
			return err
		}
	}

	globalData.log.Debugf("transfer: %s/%d  %s → %s", collection, asset, from, to)
	return nil
}
