// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/buybackd/fault"
)

// Transaction - all-or-nothing write batch with read-through of its
// own uncommitted data
type Transaction interface {
	Put(pool *PoolHandle, key []byte, value []byte)
	PutN(pool *PoolHandle, key []byte, value uint64)
	Delete(pool *PoolHandle, key []byte)
	Get(pool *PoolHandle, key []byte) []byte
	GetN(pool *PoolHandle, key []byte) (uint64, bool)
	Has(pool *PoolHandle, key []byte) bool
	Commit() error
	Discard()
}

type transaction struct {
	sync.Mutex
	db      *leveldb.DB
	inUse   bool
	batch   *leveldb.Batch
	overlay map[string][]byte // nil value marks a pending delete
}

func newTransaction(db *leveldb.DB) *transaction {
	return &transaction{
		db: db,
	}
}

func (trx *transaction) begin() error {
	trx.Lock()
	defer trx.Unlock()

	if trx.inUse {
		return fault.TransactionInUse
	}

	trx.inUse = true
	trx.batch = new(leveldb.Batch)
	trx.overlay = make(map[string][]byte)
	return nil
}

// Put - stage a key/value pair
func (trx *transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	k := pool.prefixKey(key)
	staged := make([]byte, len(value))
	copy(staged, value)

	trx.Lock()
	trx.batch.Put(k, staged)
	trx.overlay[string(k)] = staged
	trx.Unlock()
}

// PutN - stage a uint64 as an 8 byte big endian record
func (trx *transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	trx.Put(pool, key, buffer)
}

// Delete - stage removal of a key
func (trx *transaction) Delete(pool *PoolHandle, key []byte) {
	k := pool.prefixKey(key)

	trx.Lock()
	trx.batch.Delete(k)
	trx.overlay[string(k)] = nil
	trx.Unlock()
}

// Get - read through the overlay then fall back to committed data
func (trx *transaction) Get(pool *PoolHandle, key []byte) []byte {
	k := pool.prefixKey(key)

	trx.Lock()
	staged, ok := trx.overlay[string(k)]
	trx.Unlock()
	if ok {
		return staged // nil when a delete is pending
	}
	return pool.Get(key)
}

// GetN - read through and decode first 8 bytes as big endian uint64
func (trx *transaction) GetN(pool *PoolHandle, key []byte) (uint64, bool) {
	buffer := trx.Get(pool, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %s", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check existence through the overlay
func (trx *transaction) Has(pool *PoolHandle, key []byte) bool {
	k := pool.prefixKey(key)

	trx.Lock()
	staged, ok := trx.overlay[string(k)]
	trx.Unlock()
	if ok {
		return nil != staged
	}
	return pool.Has(key)
}

// Commit - write the whole batch and release the transaction
func (trx *transaction) Commit() error {
	trx.Lock()
	defer trx.Unlock()

	if !trx.inUse {
		return fault.NotInitialised
	}

	err := trx.db.Write(trx.batch, nil)
	trx.inUse = false
	trx.batch = nil
	trx.overlay = nil
	return err
}

// Discard - drop every staged write and release the transaction
func (trx *transaction) Discard() {
	trx.Lock()
	defer trx.Unlock()

	trx.inUse = false
	trx.batch = nil
	trx.overlay = nil
}
