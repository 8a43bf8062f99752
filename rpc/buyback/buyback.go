// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package buyback - RPC surface of the buyback engine
//
// caller identity is carried in the arguments; authenticating it is a
// transport concern outside this service
package buyback

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/custodian"
	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/rpc/ratelimit"
)

const (
	rateLimitCustodian = 200
	rateBurstCustodian = 100
)

// limit for assets or fungible pulls in one call
const maximumBatchSize = 100

// Custodian - type for RPC calls
type Custodian struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  custodian.Custodian
}

// New - create the service
func New(log *logger.L, engine custodian.Custodian) *Custodian {
	return &Custodian{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCustodian, rateBurstCustodian),
		Engine:  engine,
	}
}

// Sell a batch of collectibles
// ----------------------------

// SellArguments - the assets offered and their seller
type SellArguments struct {
	Caller account.Account            `json:"caller"`
	Assets []custodian.AssetReference `json:"assets"`
}

// SellReply - results from selling assets
type SellReply struct {
	Payout      uint64 `json:"payout"`
	PoolBalance uint64 `json:"poolBalance"`
	EventId     uint64 `json:"eventId"`
}

// Sell - buy the listed assets from the caller at the fixed price
func (c *Custodian) Sell(arguments *SellArguments, reply *SellReply) error {

	if err := ratelimit.LimitN(c.Limiter, len(arguments.Assets), maximumBatchSize); nil != err {
		if fault.InvalidCount == err && 0 == len(arguments.Assets) {
			// let the engine report the proper emptiness fault
			err = fault.EmptyAssetList
		}
		return err
	}

	c.Log.Infof("Custodian.Sell: %s  %d assets", arguments.Caller, len(arguments.Assets))

	info, err := c.Engine.SellAssets(arguments.Caller, arguments.Assets)
	if nil != err {
		return err
	}

	reply.Payout = info.Payout
	reply.PoolBalance = info.PoolBalance
	reply.EventId = info.EventId
	return nil
}

// Sell a batch of fungible pulls
// ------------------------------

// SellFungibleArguments - the token pulls offered and their seller
type SellFungibleArguments struct {
	Caller    account.Account           `json:"caller"`
	Transfers []custodian.TokenTransfer `json:"transfers"`
}

// SellFungible - buy the listed token amounts at the flat fixed price
func (c *Custodian) SellFungible(arguments *SellFungibleArguments, reply *SellReply) error {

	if err := ratelimit.LimitN(c.Limiter, len(arguments.Transfers), maximumBatchSize); nil != err {
		if fault.InvalidCount == err && 0 == len(arguments.Transfers) {
			err = fault.EmptyFungibleList
		}
		return err
	}

	c.Log.Infof("Custodian.SellFungible: %s  %d transfers", arguments.Caller, len(arguments.Transfers))

	info, err := c.Engine.SellFungibles(arguments.Caller, arguments.Transfers)
	if nil != err {
		return err
	}

	reply.Payout = info.Payout
	reply.PoolBalance = info.PoolBalance
	reply.EventId = info.EventId
	return nil
}

// Pool funding and withdrawal
// ---------------------------

// DepositArguments - value to add to the pool
type DepositArguments struct {
	Caller account.Account `json:"caller"`
	Amount uint64          `json:"amount"`
}

// DepositReply - results from a deposit
type DepositReply struct {
	PoolBalance uint64 `json:"poolBalance"`
	EventId     uint64 `json:"eventId"`
}

// Deposit - move value from the caller into the pool
func (c *Custodian) Deposit(arguments *DepositArguments, reply *DepositReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Custodian.Deposit: %s  %d", arguments.Caller, arguments.Amount)

	info, err := c.Engine.Deposit(arguments.Caller, arguments.Amount)
	if nil != err {
		return err
	}

	reply.PoolBalance = info.PoolBalance
	reply.EventId = info.EventId
	return nil
}

// WithdrawArguments - owner removal of pooled value
type WithdrawArguments struct {
	Caller    account.Account `json:"caller"`
	Recipient account.Account `json:"recipient"`
	Amount    uint64          `json:"amount"`
}

// Withdraw - owner-only removal of pooled value
func (c *Custodian) Withdraw(arguments *WithdrawArguments, reply *DepositReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Custodian.Withdraw: %s → %s  %d", arguments.Caller, arguments.Recipient, arguments.Amount)

	info, err := c.Engine.Withdraw(arguments.Caller, arguments.Recipient, arguments.Amount)
	if nil != err {
		return err
	}

	reply.PoolBalance = info.PoolBalance
	reply.EventId = info.EventId
	return nil
}

// Pause state
// -----------

// PauseArguments - owner identity for a state change
type PauseArguments struct {
	Caller account.Account `json:"caller"`
}

// PauseReply - resulting operational state
type PauseReply struct {
	State string `json:"state"`
}

// Pause - owner-only stop of all intake operations
func (c *Custodian) Pause(arguments *PauseArguments, reply *PauseReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Custodian.Pause: %s", arguments.Caller)

	err := c.Engine.Pause(arguments.Caller)
	if nil != err {
		return err
	}

	status, err := c.Engine.Status()
	if nil != err {
		return err
	}
	reply.State = status.State
	return nil
}

// Resume - owner-only return to active intake
func (c *Custodian) Resume(arguments *PauseArguments, reply *PauseReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	c.Log.Infof("Custodian.Resume: %s", arguments.Caller)

	err := c.Engine.Resume(arguments.Caller)
	if nil != err {
		return err
	}

	status, err := c.Engine.Status()
	if nil != err {
		return err
	}
	reply.State = status.State
	return nil
}

// Status
// ------

// StatusArguments - empty arguments for a status request
type StatusArguments struct{}

// StatusReply - snapshot of the custodian
type StatusReply struct {
	State       string `json:"state"`
	PoolBalance uint64 `json:"poolBalance"`
	UnitPrice   uint64 `json:"unitPrice"`
	Holdings    uint64 `json:"holdings"`
	Events      uint64 `json:"events"`
}

// Status - current snapshot for operators
func (c *Custodian) Status(_ *StatusArguments, reply *StatusReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	status, err := c.Engine.Status()
	if nil != err {
		return err
	}

	reply.State = status.State
	reply.PoolBalance = status.PoolBalance
	reply.UnitPrice = status.UnitPrice
	reply.Holdings = status.Holdings
	reply.Events = status.Events
	return nil
}
