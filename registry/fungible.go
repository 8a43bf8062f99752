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

// IsToken - check a fungible token type is accepted
func IsToken(token TokenId) error {
	if !globalData.tokens.Has(token[:]) {
		return fault.UnsupportedToken
	}
	return nil
}

// TokenBalance - fungible balance of an account
func TokenBalance(trx storage.Transaction, token TokenId, owner account.Account) uint64 {
	balance, _ := trx.GetN(globalData.balances, balanceKey(token, owner))
	return balance
}

// Allowance - how much a spender may move on the owner's behalf
func Allowance(trx storage.Transaction, token TokenId, owner account.Account, spender account.Account) uint64 {
	allowance, _ := trx.GetN(globalData.allowances, allowanceKey(token, owner, spender))
	return allowance
}

// Approve - authorise a spender up to an amount, replacing any
// previous authorisation
func Approve(trx storage.Transaction, token TokenId, owner account.Account, spender account.Account, amount uint64) error {
	err := IsToken(token)
	if err != nil {
		return err
	}

	globalData.log.Infof("approve: %s  %s → %s  %d", token, owner, spender, amount)
	trx.PutN(globalData.allowances, allowanceKey(token, owner, spender), amount)
	return nil
}

// Mint - create fungible supply for an account
func Mint(trx storage.Transaction, token TokenId, owner account.Account, amount uint64) error {
	err := IsToken(token)
	if err != nil {
		return err
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	key := balanceKey(token, owner)
	balance, _ := trx.GetN(globalData.balances, key)

	globalData.log.Infof("mint: %s  %s  %d", token, owner, amount)
	trx.PutN(globalData.balances, key, balance+amount)
	return nil
}

// TransferTokens - allowance-checked transfer-from
//
// when the spender is not the owner the spender's allowance must cover
// the amount and is reduced by it
func TransferTokens(trx storage.Transaction, token TokenId, spender account.Account, from account.Account, to account.Account, amount uint64) error {

	err := IsToken(token)
	if err != nil {
		return err
	}

	if spender != from {
		aKey := allowanceKey(token, from, spender)
		allowance, _ := trx.GetN(globalData.allowances, aKey)
		if allowance < amount {
			return fault.InsufficientAllowance
		}
		trx.PutN(globalData.allowances, aKey, allowance-amount)
	}

	fromKey := balanceKey(token, from)
	fromBalance, _ := trx.GetN(globalData.balances, fromKey)
	if fromBalance < amount {
		return fault.InsufficientTokens
	}

	toKey := balanceKey(token, to)
	toBalance, _ := trx.GetN(globalData.balances, toKey)

	trx.PutN(globalData.balances, fromKey, fromBalance-amount)
	trx.PutN(globalData.balances, toKey, toBalance+amount)

	globalData.log.Debugf("transfer: %s  %s → %s  %d", token, from, to, amount)
	return nil
}
