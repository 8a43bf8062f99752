// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the native value ledger
//
// accounts hold balances of the pooled currency; a transfer either
// fully debits and credits inside the supplied transaction or fails
// with no effect
package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/storage"
)

// GenesisAccount - configuration of an initially funded account
type GenesisAccount struct {
	Account string `gluamapper:"account" json:"account"`
	Amount  string `gluamapper:"amount" json:"amount"`
}

// key in the state pool marking that genesis funding was applied
var genesisDoneKey = []byte("ledger.genesis")

var globalData struct {
	sync.RWMutex
	log      *logger.L
	accounts *storage.PoolHandle
	state    *storage.PoolHandle

	// set once during initialise
	initialised bool
}

// Initialise - attach the ledger to its storage pools and apply any
// genesis funding exactly once
func Initialise(accounts, state *storage.PoolHandle, genesis map[account.Account]uint64) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.accounts = accounts
	globalData.state = state

	if !state.Has(genesisDoneKey) && len(genesis) > 0 {
		trx, err := storage.NewDBTransaction()
		if err != nil {
			return err
		}
		for acc, amount := range genesis {
			globalData.log.Infof("genesis: %s ← %d", acc, amount)
			trx.PutN(accounts, acc.Bytes(), amount)
		}
		trx.Put(state, genesisDoneKey, []byte{0x01})
		err = trx.Commit()
		if err != nil {
			return err
		}
	}

	globalData.initialised = true
	return nil
}

// Finalise - shut down the ledger
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

// Balance - current balance of an account as seen by the transaction
func Balance(trx storage.Transaction, acc account.Account) uint64 {
	balance, _ := trx.GetN(globalData.accounts, acc.Bytes())
	return balance
}

// CommittedBalance - balance of an account ignoring any open transaction
func CommittedBalance(acc account.Account) uint64 {
	balance, _ := globalData.accounts.GetN(acc.Bytes())
	return balance
}

// Transfer - atomically move value between two accounts
//
// fails with fault.InsufficientValue leaving the transaction unchanged
func Transfer(trx storage.Transaction, from, to account.Account, amount uint64) error {

	fromBalance, _ := trx.GetN(globalData.accounts, from.Bytes())
	if fromBalance < amount {
		return fault.InsufficientValue
	}

	toBalance, _ := trx.GetN(globalData.accounts, to.Bytes())

	trx.PutN(globalData.accounts, from.Bytes(), fromBalance-amount)
	trx.PutN(globalData.accounts, to.Bytes(), toBalance+amount)
	return nil
}
