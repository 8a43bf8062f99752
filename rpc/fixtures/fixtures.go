// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared scaffolding for unit tests
package fixtures

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/buybackd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic accounts for tests
var (
	CustodianAccount account.Account
	OwnerAccount     account.Account
	SellerAccount    account.Account
	BuyerAccount     account.Account
)

func init() {
	for i := range CustodianAccount {
		CustodianAccount[i] = 0x01
		OwnerAccount[i] = 0x02
		SellerAccount[i] = 0x03
		BuyerAccount[i] = 0x04
	}
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

var certificateOnce sync.Once
var certificatePEM string
var keyPEM string

// CertificateAndKey - a self-signed certificate pair shared by the
// TLS tests, generated once per test binary
func CertificateAndKey(t interface{ Fatalf(string, ...interface{}) }) (string, string) {
	certificateOnce.Do(func() {
		cert, key, err := certgen.NewTLSCertPair(
			"buybackd testing",
			time.Now().Add(24*time.Hour),
			false,
			nil,
		)
		if nil != err {
			t.Fatalf("certificate generation error: %v", err)
		}
		certificatePEM = string(cert)
		keyPEM = string(key)
	})
	return certificatePEM, keyPEM
}
