// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/custodian"
	"github.com/bitmark-inc/buybackd/rpc/buyback"
)

// Sell - offer a batch of collectibles to the custodian
func (client *Client) Sell(caller account.Account, assets []custodian.AssetReference) (*buyback.SellReply, error) {

	arguments := buyback.SellArguments{
		Caller: caller,
		Assets: assets,
	}

	client.printJson("Sell Request", arguments)

	var reply buyback.SellReply
	if err := client.client.Call("Custodian.Sell", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Sell Reply", reply)

	return &reply, nil
}

// SellFungible - offer token amounts to the custodian
func (client *Client) SellFungible(caller account.Account, transfers []custodian.TokenTransfer) (*buyback.SellReply, error) {

	arguments := buyback.SellFungibleArguments{
		Caller:    caller,
		Transfers: transfers,
	}

	client.printJson("SellFungible Request", arguments)

	var reply buyback.SellReply
	if err := client.client.Call("Custodian.SellFungible", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("SellFungible Reply", reply)

	return &reply, nil
}

// Deposit - add value to the buyback pool
func (client *Client) Deposit(caller account.Account, amount uint64) (*buyback.DepositReply, error) {

	arguments := buyback.DepositArguments{
		Caller: caller,
		Amount: amount,
	}

	client.printJson("Deposit Request", arguments)

	var reply buyback.DepositReply
	if err := client.client.Call("Custodian.Deposit", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Deposit Reply", reply)

	return &reply, nil
}

// Withdraw - owner removal of pooled value
func (client *Client) Withdraw(caller, recipient account.Account, amount uint64) (*buyback.DepositReply, error) {

	arguments := buyback.WithdrawArguments{
		Caller:    caller,
		Recipient: recipient,
		Amount:    amount,
	}

	client.printJson("Withdraw Request", arguments)

	var reply buyback.DepositReply
	if err := client.client.Call("Custodian.Withdraw", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Withdraw Reply", reply)

	return &reply, nil
}

// Pause - owner stop of intake operations
func (client *Client) Pause(caller account.Account) (*buyback.PauseReply, error) {

	arguments := buyback.PauseArguments{
		Caller: caller,
	}

	client.printJson("Pause Request", arguments)

	var reply buyback.PauseReply
	if err := client.client.Call("Custodian.Pause", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Pause Reply", reply)

	return &reply, nil
}

// Resume - owner return to active intake
func (client *Client) Resume(caller account.Account) (*buyback.PauseReply, error) {

	arguments := buyback.PauseArguments{
		Caller: caller,
	}

	client.printJson("Resume Request", arguments)

	var reply buyback.PauseReply
	if err := client.client.Call("Custodian.Resume", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Resume Reply", reply)

	return &reply, nil
}

// GetStatus - request the custodian snapshot
func (client *Client) GetStatus() (*buyback.StatusReply, error) {

	var reply buyback.StatusReply
	if err := client.client.Call("Custodian.Status", &buyback.StatusArguments{}, &reply); nil != err {
		return nil, err
	}

	client.printJson("Status Reply", reply)

	return &reply, nil
}
