// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/buybackd/counter"
	"github.com/bitmark-inc/buybackd/custodian"
	"github.com/bitmark-inc/buybackd/rpc/buyback"
	"github.com/bitmark-inc/buybackd/rpc/issue"
	"github.com/bitmark-inc/buybackd/rpc/node"
)

// Create - register all services onto one RPC server
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(buyback.New(log, custodian.Get()))
	_ = server.Register(issue.New(log))
	_ = server.Register(node.New(log, start, version, rpcCount, custodian.Get()))

	return server
}
