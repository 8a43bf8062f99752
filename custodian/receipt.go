// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custodian

import (
	"bytes"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/mode"
	"github.com/bitmark-inc/buybackd/registry"
	"github.com/bitmark-inc/buybackd/storage"
)

// AssetReceived - receipt acknowledgment callback
//
// fired by a collection registry while an asset is being transferred
// into custody; it runs nested inside SellAssets' transfer step and is
// therefore not behind the entry flag.
//
// acceptance requires a provenance record written by the current sell
// operation naming exactly this asset and this previous owner; anything
// else is an unsolicited push and rejecting it aborts the transfer that
// triggered it
func (c *custodianData) AssetReceived(trx storage.Transaction, operator account.Account, from account.Account, collection registry.CollectionId, asset registry.AssetId) error {

	if mode.Is(mode.Paused) {
		return fault.NotAvailableWhenPaused
	}

	record := trx.Get(c.provenance, custodyKey(collection, asset))
	if nil == record || !bytes.Equal(record, from.Bytes()) {
		c.log.Warnf("unsolicited transfer rejected: %s/%d from %s", collection, asset, from)
		return fault.UnrecognisedProvenance
	}

	c.log.Debugf("receipt acknowledged: %s/%d from %s", collection, asset, from)
	return nil
}
