// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/buybackd/command/buyback-cli/rpccalls"
	"github.com/bitmark-inc/buybackd/registry"
)

func runIssue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	collection, err := checkCollection(c.String("collection"))
	if nil != err {
		return err
	}

	owner, err := checkAccount(c.String("owner"))
	if nil != err {
		return err
	}

	assetId := registry.AssetId(c.Uint64("asset"))

	if m.verbose {
		fmt.Fprintf(m.e, "collection: %s\n", collection)
		fmt.Fprintf(m.e, "asset: %d\n", assetId)
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Issue(collection, assetId, owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	token, err := checkToken(c.String("token"))
	if nil != err {
		return err
	}

	owner, err := checkAccount(c.String("owner"))
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrRequiredAmount
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(token, owner, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runApprove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	token, err := checkToken(c.String("token"))
	if nil != err {
		return err
	}

	owner, err := checkAccount(c.String("owner"))
	if nil != err {
		return err
	}

	spender, err := checkAccount(c.String("spender"))
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Approve(token, owner, spender, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
