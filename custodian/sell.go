// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custodian

import (
	"math"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/ledger"
	"github.com/bitmark-inc/buybackd/mode"
	"github.com/bitmark-inc/buybackd/registry"
	"github.com/bitmark-inc/buybackd/storage"
)

// database key for a provenance or holding record
func custodyKey(collection registry.CollectionId, asset registry.AssetId) []byte {
	key := make([]byte, 0, registry.IdentifierLength+8)
	key = append(key, collection[:]...)
	key = append(key, asset.Bytes()...)
	return key
}

// SellAssets - buy a batch of collectibles from the caller
//
// payout is count × unit price; the pool must cover it before any
// asset is touched and the whole batch succeeds or nothing moves
func (c *custodianData) SellAssets(caller account.Account, assets []AssetReference) (*HarvestInfo, error) {

	err := c.enter()
	if err != nil {
		return nil, err
	}
	defer c.leave()

	if mode.IsNot(mode.Active) {
		return nil, fault.NotAvailableWhenPaused
	}
	if 0 == len(assets) {
		return nil, fault.EmptyAssetList
	}

	count := uint64(len(assets))
	if 0 != c.unitPrice && count > math.MaxUint64/c.unitPrice {
		return nil, fault.PayoutOverflow
	}
	payout := count * c.unitPrice

	trx, err := storage.NewDBTransaction()
	if err != nil {
		return nil, err
	}

	if ledger.Balance(trx, c.custodian) < payout {
		trx.Discard()
		return nil, fault.InsufficientPoolBalance
	}

	for _, asset := range assets {

		err = registry.IsNonFungible(asset.Collection)
		if err != nil {
			trx.Discard()
			return nil, err
		}

		owner, err := registry.AssetOwner(trx, asset.Collection, asset.AssetId)
		if err != nil {
			trx.Discard()
			return nil, err
		}
		if owner != caller {
			trx.Discard()
			return nil, fault.NotAssetOwner
		}

		// the provenance record must exist before the registry
		// transfer fires the receipt callback
		key := custodyKey(asset.Collection, asset.AssetId)
		trx.Put(c.provenance, key, caller.Bytes())

		err = registry.TransferAsset(trx, c.custodian, asset.Collection, asset.AssetId, caller, c.custodian)
		if err != nil {
			trx.Discard()
			return nil, err
		}

		trx.PutN(c.holdings, key, c.unitPrice)
	}

	held, _ := trx.GetN(c.state, holdingsKey)
	trx.PutN(c.state, holdingsKey, held+count)

	event := Event{
		Type:    EventAssetsHarvested,
		Account: caller.String(),
		Amount:  payout,
		Assets:  assets,
	}
	data := c.stageEvent(trx, &event)

	err = ledger.Transfer(trx, c.custodian, caller, payout)
	if err != nil {
		trx.Discard()
		return nil, err
	}

	remaining := ledger.Balance(trx, c.custodian)

	err = trx.Commit()
	if err != nil {
		return nil, err
	}
	c.broadcastEvent(&event, data)

	return &HarvestInfo{
		Payout:      payout,
		PoolBalance: remaining,
		EventId:     event.Sequence,
	}, nil
}

// SellFungibles - buy a batch of fungible pulls from the caller
//
// payout is the flat fixed price once per call regardless of the
// number of entries
func (c *custodianData) SellFungibles(caller account.Account, transfers []TokenTransfer) (*HarvestInfo, error) {

	err := c.enter()
	if err != nil {
		return nil, err
	}
	defer c.leave()

	if mode.IsNot(mode.Active) {
		return nil, fault.NotAvailableWhenPaused
	}
	if 0 == len(transfers) {
		return nil, fault.EmptyFungibleList
	}

	payout := c.unitPrice

	trx, err := storage.NewDBTransaction()
	if err != nil {
		return nil, err
	}

	if ledger.Balance(trx, c.custodian) < payout {
		trx.Discard()
		return nil, fault.InsufficientPoolBalance
	}

	for _, transfer := range transfers {

		if 0 == transfer.Amount {
			trx.Discard()
			return nil, fault.ZeroAmount
		}

		if registry.Allowance(trx, transfer.Token, caller, c.custodian) < transfer.Amount {
			trx.Discard()
			return nil, fault.InsufficientAllowance
		}

		err = registry.TransferTokens(trx, transfer.Token, c.custodian, caller, c.custodian, transfer.Amount)
		if err != nil {
			trx.Discard()
			return nil, err
		}
	}

	event := Event{
		Type:      EventFungiblesHarvested,
		Account:   caller.String(),
		Amount:    payout,
		Transfers: transfers,
	}
	data := c.stageEvent(trx, &event)

	err = ledger.Transfer(trx, c.custodian, caller, payout)
	if err != nil {
		trx.Discard()
		return nil, err
	}

	remaining := ledger.Balance(trx, c.custodian)

	err = trx.Commit()
	if err != nil {
		return nil, err
	}
	c.broadcastEvent(&event, data)

	return &HarvestInfo{
		Payout:      payout,
		PoolBalance: remaining,
		EventId:     event.Sequence,
	}, nil
}
