// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custodian

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/messagebus"
	"github.com/bitmark-inc/buybackd/storage"
)

// audit event types
const (
	EventDeposit            = "deposit"
	EventWithdraw           = "withdraw"
	EventAssetsHarvested    = "assets-harvested"
	EventFungiblesHarvested = "fungibles-harvested"
	EventPaused             = "paused"
	EventResumed            = "resumed"
)

// Event - one record of the append-only audit log
//
// the full item list is carried so an off-system reconciler needs no
// other data source
type Event struct {
	Sequence  uint64           `json:"sequence"`
	Type      string           `json:"type"`
	Account   string           `json:"account"`
	Recipient string           `json:"recipient,omitempty"`
	Amount    uint64           `json:"amount"`
	Assets    []AssetReference `json:"assets,omitempty"`
	Transfers []TokenTransfer  `json:"transfers,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

func sequenceKey(sequence uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, sequence)
	return key
}

func sequenceFromKey(key []byte) uint64 {
	if 8 != len(key) {
		logger.Panicf("event.sequenceFromKey bad key: %x", key)
	}
	return binary.BigEndian.Uint64(key)
}

// stage one audit event inside the transaction; the sequence number
// only advances when the transaction later commits
func (c *custodianData) stageEvent(trx storage.Transaction, event *Event) []byte {
	event.Sequence = c.sequence + 1
	event.Timestamp = time.Now().UTC()

	data, err := json.Marshal(event)
	logger.PanicIfError("custodian.stageEvent", err)

	trx.Put(c.events, sequenceKey(event.Sequence), data)
	return data
}

// after a successful commit: advance the sequence and broadcast
//
// the sequence is read by Status outside the entry flag, so the
// update must be under the lock
func (c *custodianData) broadcastEvent(event *Event, data []byte) {
	c.Lock()
	c.sequence = event.Sequence
	c.Unlock()
	messagebus.Bus.Audit.Send(event.Type, data)
	c.log.Infof("event %d: %s", event.Sequence, event.Type)
}

// ListEvents - read a range of the audit log
//
// start is the lowest sequence number wanted, zero for the beginning
func (c *custodianData) ListEvents(start uint64, count int) ([]Event, error) {
	return ReadEvents(c.events, start, count)
}

// ReadEvents - read a range of the audit log directly from its pool
//
// used by the data commands which run before the custodian is started
func ReadEvents(pool *storage.PoolHandle, start uint64, count int) ([]Event, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	cursor := pool.NewFetchCursor()
	if start > 0 {
		cursor.Seek(sequenceKey(start))
	}

	elements, err := cursor.Fetch(count)
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(elements))
	for _, element := range elements {
		var event Event
		err = json.Unmarshal(element.Value, &event)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
