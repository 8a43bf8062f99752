// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "buyback-cli"
	app.Usage = "command line tool for a buybackd daemon"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "",
			Usage:  "*buybackd host/IP and port, `HOST:PORT`",
			EnvVar: "BUYBACK_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sell",
			Usage:     "sell collectibles to the custodian",
			ArgsUsage: "COLLECTION/ASSET...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seller, s",
					Value: "",
					Usage: "*selling account `ACCOUNT`",
				},
			},
			Action: runSell,
		},
		{
			Name:      "sell-fungible",
			Usage:     "sell token amounts to the custodian",
			ArgsUsage: "TOKEN/AMOUNT...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seller, s",
					Value: "",
					Usage: "*selling account `ACCOUNT`",
				},
			},
			Action: runSellFungible,
		},
		{
			Name:      "deposit",
			Usage:     "add value to the buyback pool",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*funding account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*decimal amount `UNITS`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "withdraw",
			Usage:     "owner removal of pooled value",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*receiving account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*decimal amount `UNITS`",
				},
			},
			Action: runWithdraw,
		},
		{
			Name:      "pause",
			Usage:     "owner stop of intake operations",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
			},
			Action: runPause,
		},
		{
			Name:      "resume",
			Usage:     "owner return to active intake",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
			},
			Action: runResume,
		},
		{
			Name:   "status",
			Usage:  "display the custodian snapshot",
			Action: runStatus,
		},
		{
			Name:   "info",
			Usage:  "display buybackd status",
			Action: runInfo,
		},
		{
			Name:      "events",
			Usage:     "list a range of audit events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start sequence `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:      "issue",
			Usage:     "mint one collectible to an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, C",
					Value: "",
					Usage: "*collection identifier `HEX`",
				},
				cli.Uint64Flag{
					Name:  "asset, a",
					Value: 0,
					Usage: "*asset number `NUMBER`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owning account `ACCOUNT`",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "mint",
			Usage:     "create fungible supply for an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token identifier `HEX`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owning account `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*token amount `NUMBER`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "approve",
			Usage:     "authorise a spender of fungible tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token identifier `HEX`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owning account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spending account `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*token amount `NUMBER`",
				},
			},
			Action: runApprove,
		},
		{
			Name:  "version",
			Usage: "display buyback-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// verify the connection settings
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// suppress connection check for offline commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		connect, err := checkConnect(c.GlobalString("connect"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "connect: %q\n", connect)
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
