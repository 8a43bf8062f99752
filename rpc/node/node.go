// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - daemon status and audit log enquiry over RPC
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/buybackd/counter"
	"github.com/bitmark-inc/buybackd/custodian"
	"github.com/bitmark-inc/buybackd/mode"
	"github.com/bitmark-inc/buybackd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// limit for event enquiry count
const maximumEventList = 100

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Engine  custodian.Custodian
	counter *counter.Counter
}

// New - create the service
func New(log *logger.L, start time.Time, version string, rpcCount *counter.Counter, engine custodian.Custodian) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Engine:  engine,
		counter: rpcCount,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Mode        string `json:"mode"`
	PoolBalance uint64 `json:"poolBalance"`
	UnitPrice   uint64 `json:"unitPrice"`
	Holdings    uint64 `json:"holdings"`
	Events      uint64 `json:"events"`
	RPCs        uint64 `json:"rpcs"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
}

// Info - return some information about this daemon
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	status, err := node.Engine.Status()
	if nil != err {
		return err
	}

	reply.Mode = mode.String()
	reply.PoolBalance = status.PoolBalance
	reply.UnitPrice = status.UnitPrice
	reply.Holdings = status.Holdings
	reply.Events = status.Events
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}

// EventsArguments - range of the audit log wanted
type EventsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// EventsReply - a slice of the audit log
type EventsReply struct {
	Events    []custodian.Event `json:"events"`
	NextStart uint64            `json:"nextStart,string"`
}

// Events - list a range of audit events
func (node *Node) Events(arguments *EventsArguments, reply *EventsReply) error {

	if err := ratelimit.LimitN(node.Limiter, arguments.Count, maximumEventList); nil != err {
		return err
	}

	events, err := node.Engine.ListEvents(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = events
	reply.NextStart = arguments.Start
	if n := len(events); n > 0 {
		reply.NextStart = events[n-1].Sequence + 1
	}

	return nil
}
