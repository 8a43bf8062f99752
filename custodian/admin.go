// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custodian

import (
	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/ledger"
	"github.com/bitmark-inc/buybackd/mode"
	"github.com/bitmark-inc/buybackd/storage"
)

// Deposit - add value to the pool
//
// any caller may fund the pool while the custodian is active
func (c *custodianData) Deposit(caller account.Account, amount uint64) (*DepositInfo, error) {

	err := c.enter()
	if err != nil {
		return nil, err
	}
	defer c.leave()

	if mode.IsNot(mode.Active) {
		return nil, fault.NotAvailableWhenPaused
	}
	if 0 == amount {
		return nil, fault.ZeroValue
	}

	trx, err := storage.NewDBTransaction()
	if err != nil {
		return nil, err
	}

	err = ledger.Transfer(trx, caller, c.custodian, amount)
	if err != nil {
		trx.Discard()
		return nil, err
	}

	event := Event{
		Type:    EventDeposit,
		Account: caller.String(),
		Amount:  amount,
	}
	data := c.stageEvent(trx, &event)

	balance := ledger.Balance(trx, c.custodian)

	err = trx.Commit()
	if err != nil {
		return nil, err
	}
	c.broadcastEvent(&event, data)

	return &DepositInfo{
		PoolBalance: balance,
		EventId:     event.Sequence,
	}, nil
}

// Withdraw - owner-only removal of pooled value
//
// available regardless of pause state; the only balance check is the
// ledger's own insufficient-funds failure
func (c *custodianData) Withdraw(caller account.Account, recipient account.Account, amount uint64) (*WithdrawInfo, error) {

	err := c.enter()
	if err != nil {
		return nil, err
	}
	defer c.leave()

	if caller != c.owner {
		return nil, fault.NotCustodianOwner
	}
	if 0 == amount {
		return nil, fault.ZeroAmount
	}
	if recipient == c.custodian {
		return nil, fault.WithdrawToSelf
	}

	trx, err := storage.NewDBTransaction()
	if err != nil {
		return nil, err
	}

	err = ledger.Transfer(trx, c.custodian, recipient, amount)
	if err != nil {
		trx.Discard()
		return nil, err
	}

	event := Event{
		Type:      EventWithdraw,
		Account:   caller.String(),
		Recipient: recipient.String(),
		Amount:    amount,
	}
	data := c.stageEvent(trx, &event)

	balance := ledger.Balance(trx, c.custodian)

	err = trx.Commit()
	if err != nil {
		return nil, err
	}
	c.broadcastEvent(&event, data)

	return &WithdrawInfo{
		PoolBalance: balance,
		EventId:     event.Sequence,
	}, nil
}

// Pause - owner-only stop of all intake operations
func (c *custodianData) Pause(caller account.Account) error {

	err := c.enter()
	if err != nil {
		return err
	}
	defer c.leave()

	if caller != c.owner {
		return fault.NotCustodianOwner
	}
	if mode.IsNot(mode.Active) {
		return fault.AlreadyPaused
	}

	trx, err := storage.NewDBTransaction()
	if err != nil {
		return err
	}

	// persists across restart
	trx.Put(c.state, pausedKey, []byte{0x01})

	event := Event{
		Type:    EventPaused,
		Account: caller.String(),
	}
	data := c.stageEvent(trx, &event)

	err = trx.Commit()
	if err != nil {
		return err
	}

	mode.Set(mode.Paused)
	c.broadcastEvent(&event, data)
	return nil
}

// Resume - owner-only return to active intake
func (c *custodianData) Resume(caller account.Account) error {

	err := c.enter()
	if err != nil {
		return err
	}
	defer c.leave()

	if caller != c.owner {
		return fault.NotCustodianOwner
	}
	if mode.IsNot(mode.Paused) {
		return fault.NotPaused
	}

	trx, err := storage.NewDBTransaction()
	if err != nil {
		return err
	}

	trx.Delete(c.state, pausedKey)

	event := Event{
		Type:    EventResumed,
		Account: caller.String(),
	}
	data := c.stageEvent(trx, &event)

	err = trx.Commit()
	if err != nil {
		return err
	}

	mode.Set(mode.Active)
	c.broadcastEvent(&event, data)
	return nil
}

// Status - current snapshot for operators
//
// not behind the entry flag, so it can run while an operation is in
// flight; the shared sequence is read under the lock
func (c *custodianData) Status() (*StatusInfo, error) {

	c.Lock()
	initialised := c.initialised
	sequence := c.sequence
	c.Unlock()

	if !initialised {
		return nil, fault.NotInitialised
	}

	held, _ := c.state.GetN(holdingsKey)

	return &StatusInfo{
		State:       mode.String(),
		PoolBalance: ledger.CommittedBalance(c.custodian),
		UnitPrice:   c.unitPrice,
		Holdings:    held,
		Events:      sequence,
	}, nil
}
