// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/buybackd/command/buyback-cli/rpccalls"
)

func runSell(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seller, err := checkAccount(c.String("seller"))
	if nil != err {
		return err
	}

	assets, err := checkAssetList(c.Args())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "seller: %s\n", seller)
		fmt.Fprintf(m.e, "assets: %d\n", len(assets))
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Sell(seller, assets)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSellFungible(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seller, err := checkAccount(c.String("seller"))
	if nil != err {
		return err
	}

	transfers, err := checkTokenList(c.Args())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "seller: %s\n", seller)
		fmt.Fprintf(m.e, "transfers: %d\n", len(transfers))
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SellFungible(seller, transfers)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
