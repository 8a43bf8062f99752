// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/buybackd/rpc/node"
)

// GetInfo - request status from buybackd (must be matching version)
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// GetInfoCompat - request status from buybackd (any version)
func (client *Client) GetInfoCompat() (map[string]interface{}, error) {
	var reply map[string]interface{}
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return reply, nil
}

// GetEvents - list a range of audit events
func (client *Client) GetEvents(start uint64, count int) (*node.EventsReply, error) {

	arguments := node.EventsArguments{
		Start: start,
		Count: count,
	}

	client.printJson("Events Request", arguments)

	var reply node.EventsReply
	if err := client.client.Call("Node.Events", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Events Reply", reply)

	return &reply, nil
}
