// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/buybackd/account"
	"github.com/bitmark-inc/buybackd/custodian"
	"github.com/bitmark-inc/buybackd/fault"
	"github.com/bitmark-inc/buybackd/registry"
)

var (
	ErrRequiredAccount    = fault.InvalidError("account is required")
	ErrRequiredAmount     = fault.InvalidError("amount is required")
	ErrRequiredAssetList  = fault.InvalidError("at least one COLLECTION/ASSET argument is required")
	ErrRequiredCollection = fault.InvalidError("collection is required")
	ErrRequiredConnect    = fault.InvalidError("connect is required")
	ErrRequiredToken      = fault.InvalidError("token is required")
	ErrRequiredTokenList  = fault.InvalidError("at least one TOKEN/AMOUNT argument is required")
)

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// account is required and must decode
func checkAccount(s string) (account.Account, error) {
	var zero account.Account
	if "" == s {
		return zero, ErrRequiredAccount
	}

	return account.AccountFromBase58(s)
}

// collection is required and must decode
func checkCollection(s string) (registry.CollectionId, error) {
	var zero registry.CollectionId
	if "" == s {
		return zero, ErrRequiredCollection
	}

	return registry.CollectionIdFromString(s)
}

// token is required and must decode
func checkToken(s string) (registry.TokenId, error) {
	var zero registry.TokenId
	if "" == s {
		return zero, ErrRequiredToken
	}

	return registry.TokenIdFromString(s)
}

// decode a list of COLLECTION/ASSET arguments
func checkAssetList(arguments []string) ([]custodian.AssetReference, error) {
	if 0 == len(arguments) {
		return nil, ErrRequiredAssetList
	}

	assets := make([]custodian.AssetReference, 0, len(arguments))
	for _, argument := range arguments {
		i := strings.LastIndex(argument, "/")
		if i <= 0 || i >= len(argument)-1 {
			return nil, fault.InvalidItem
		}
		collection, err := registry.CollectionIdFromString(argument[:i])
		if nil != err {
			return nil, err
		}
		n, err := strconv.ParseUint(argument[i+1:], 10, 64)
		if nil != err {
			return nil, err
		}
		assets = append(assets, custodian.AssetReference{
			Collection: collection,
			AssetId:    registry.AssetId(n),
		})
	}
	return assets, nil
}

// decode a list of TOKEN/AMOUNT arguments
func checkTokenList(arguments []string) ([]custodian.TokenTransfer, error) {
	if 0 == len(arguments) {
		return nil, ErrRequiredTokenList
	}

	transfers := make([]custodian.TokenTransfer, 0, len(arguments))
	for _, argument := range arguments {
		i := strings.LastIndex(argument, "/")
		if i <= 0 || i >= len(argument)-1 {
			return nil, fault.InvalidItem
		}
		token, err := registry.TokenIdFromString(argument[:i])
		if nil != err {
			return nil, err
		}
		n, err := strconv.ParseUint(argument[i+1:], 10, 64)
		if nil != err {
			return nil, err
		}
		transfers = append(transfers, custodian.TokenTransfer{
			Token:  token,
			Amount: n,
		})
	}
	return transfers, nil
}
