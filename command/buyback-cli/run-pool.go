// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/buybackd/command/buyback-cli/rpccalls"
	"github.com/bitmark-inc/buybackd/currency"
)

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := checkAccount(c.String("from"))
	if nil != err {
		return err
	}

	if "" == c.String("amount") {
		return ErrRequiredAmount
	}
	amount, err := currency.ParseUnits(c.String("amount"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "amount: %s\n", currency.String(amount))
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Deposit(from, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runWithdraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c.String("owner"))
	if nil != err {
		return err
	}

	recipient, err := checkAccount(c.String("recipient"))
	if nil != err {
		return err
	}

	if "" == c.String("amount") {
		return ErrRequiredAmount
	}
	amount, err := currency.ParseUnits(c.String("amount"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
		fmt.Fprintf(m.e, "amount: %s\n", currency.String(amount))
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Withdraw(owner, recipient, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
