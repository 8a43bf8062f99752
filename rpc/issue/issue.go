// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package issue - registry administration over RPC
//
// minting and allowance setting so buyback scenarios can be prepared
// end to end against a running daemon
package issue

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/registry"
	"github.com/bitmark-inc/buybackd/rpc/ratelimit"
	"github.com/bitmark-inc/buybackd/storage"
)

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Registry - type for RPC calls
type Registry struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

// New - create the service
func New(log *logger.L) *Registry {
	return &Registry{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
	}
}

// IssueArguments - mint one collectible
type IssueArguments struct {
	Collection registry.CollectionId `json:"collection"`
	AssetId    registry.AssetId      `json:"assetId"`
	Owner      account.Account       `json:"owner"`
}

// IssueReply - results from minting
type IssueReply struct {
	Collection registry.CollectionId `json:"collection"`
	AssetId    registry.AssetId      `json:"assetId"`
	Owner      account.Account       `json:"owner"`
}

// Issue - mint one collectible to an owner
func (r *Registry) Issue(arguments *IssueArguments, reply *IssueReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	r.Log.Infof("Registry.Issue: %s/%d → %s", arguments.Collection, arguments.AssetId, arguments.Owner)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = registry.Issue(trx, arguments.Collection, arguments.AssetId, arguments.Owner)
	if nil != err {
		trx.Discard()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	reply.Collection = arguments.Collection
	reply.AssetId = arguments.AssetId
	reply.Owner = arguments.Owner
	return nil
}

// MintArguments - create fungible supply
type MintArguments struct {
	Token  registry.TokenId `json:"token"`
	Owner  account.Account  `json:"owner"`
	Amount uint64           `json:"amount"`
}

// MintReply - resulting balance
type MintReply struct {
	Balance uint64 `json:"balance"`
}

// Mint - create fungible supply for an account
func (r *Registry) Mint(arguments *MintArguments, reply *MintReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	r.Log.Infof("Registry.Mint: %s  %s  %d", arguments.Token, arguments.Owner, arguments.Amount)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = registry.Mint(trx, arguments.Token, arguments.Owner, arguments.Amount)
	if nil != err {
		trx.Discard()
		return err
	}

	balance := registry.TokenBalance(trx, arguments.Token, arguments.Owner)

	err = trx.Commit()
	if nil != err {
		return err
	}

	reply.Balance = balance
	return nil
}

// ApproveArguments - authorise a spender
type ApproveArguments struct {
	Token   registry.TokenId `json:"token"`
	Owner   account.Account  `json:"owner"`
	Spender account.Account  `json:"spender"`
	Amount  uint64           `json:"amount"`
}

// ApproveReply - resulting allowance
type ApproveReply struct {
	Allowance uint64 `json:"allowance"`
}

// Approve - authorise a spender up to an amount
func (r *Registry) Approve(arguments *ApproveArguments, reply *ApproveReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	r.Log.Infof("Registry.Approve: %s  %s → %s  %d", arguments.Token, arguments.Owner, arguments.Spender, arguments.Amount)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = registry.Approve(trx, arguments.Token, arguments.Owner, arguments.Spender, arguments.Amount)
	if nil != err {
		trx.Discard()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	reply.Allowance = arguments.Amount
	return nil
}
