// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/configuration"
	"github.com/bitmark-inc/buybackd/currency"
	"github.com/bitmark-inc/buybackd/ledger"
	"github.com/bitmark-inc/buybackd/publish"
	"github.com/bitmark-inc/buybackd/registry"
	"github.com/bitmark-inc/buybackd/rpc/listeners"
	"github.com/bitmark-inc/buybackd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabaseName     = "buyback.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "buybackd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultRPCBandwidth = 25000000
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - the directory and name of the LevelDB store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the daemon configuration
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Owner     string `gluamapper:"owner" json:"owner"`
	Custodian string `gluamapper:"custodian" json:"custodian"`
	UnitPrice string `gluamapper:"unit_price" json:"unit_price"`

	Collections []registry.CollectionConfig `gluamapper:"collections" json:"collections"`
	Tokens      []registry.TokenConfig      `gluamapper:"tokens" json:"tokens"`
	Genesis     []ledger.GenesisAccount     `gluamapper:"genesis" json:"genesis"`

	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabaseName,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultRPCBandwidth,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// decode the account and price settings into their internal forms
func verifyAccounts(options *Configuration) (account.Account, account.Account, uint64, error) {

	var zero account.Account

	owner, err := account.AccountFromBase58(options.Owner)
	if nil != err {
		return zero, zero, 0, fmt.Errorf("owner: %q error: %s", options.Owner, err)
	}

	custodian, err := account.AccountFromBase58(options.Custodian)
	if nil != err {
		return zero, zero, 0, fmt.Errorf("custodian: %q error: %s", options.Custodian, err)
	}

	unitPrice, err := currency.ParseUnits(options.UnitPrice)
	if nil != err {
		return zero, zero, 0, fmt.Errorf("unit_price: %q error: %s", options.UnitPrice, err)
	}
	if 0 == unitPrice {
		return zero, zero, 0, fmt.Errorf("unit_price: %q must not be zero", options.UnitPrice)
	}

	return owner, custodian, unitPrice, nil
}

// decode the genesis account list into ledger form
func verifyGenesis(entries []ledger.GenesisAccount) (map[account.Account]uint64, error) {

	genesis := make(map[account.Account]uint64, len(entries))

	for i, entry := range entries {
		acc, err := account.AccountFromBase58(entry.Account)
		if nil != err {
			return nil, fmt.Errorf("genesis[%d]: account: %q error: %s", i, entry.Account, err)
		}
		amount, err := currency.ParseUnits(entry.Amount)
		if nil != err {
			return nil, fmt.Errorf("genesis[%d]: amount: %q error: %s", i, entry.Amount, err)
		}
		if _, ok := genesis[acc]; ok {
			return nil, fmt.Errorf("genesis[%d]: account: %q is duplicated", i, entry.Account)
		}
		genesis[acc] = amount
	}

	return genesis, nil
}
