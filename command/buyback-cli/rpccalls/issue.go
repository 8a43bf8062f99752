// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/registry"
	"github.com/bitmark-inc/buybackd/rpc/issue"
)

// Issue - mint one collectible to an owner
func (client *Client) Issue(collection registry.CollectionId, assetId registry.AssetId, owner account.Account) (*issue.IssueReply, error) {

	arguments := issue.IssueArguments{
		Collection: collection,
		AssetId:    assetId,
		Owner:      owner,
	}

	client.printJson("Issue Request", arguments)

	var reply issue.IssueReply
	if err := client.client.Call("Registry.Issue", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Issue Reply", reply)

	return &reply, nil
}

// Mint - create fungible supply for an account
func (client *Client) Mint(token registry.TokenId, owner account.Account, amount uint64) (*issue.MintReply, error) {

	arguments := issue.MintArguments{
		Token:  token,
		Owner:  owner,
		Amount: amount,
	}

	client.printJson("Mint Request", arguments)

	var reply issue.MintReply
	if err := client.client.Call("Registry.Mint", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Mint Reply", reply)

	return &reply, nil
}

// Approve - authorise a spender up to an amount
func (client *Client) Approve(token registry.TokenId, owner, spender account.Account, amount uint64) (*issue.ApproveReply, error) {

	arguments := issue.ApproveArguments{
		Token:   token,
		Owner:   owner,
		Spender: spender,
		Amount:  amount,
	}

	client.printJson("Approve Request", arguments)

	var reply issue.ApproveReply
	if err := client.client.Call("Registry.Approve", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Approve Reply", reply)

	return &reply, nil
}
