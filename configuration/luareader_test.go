// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/buybackd/configuration"
	"github.com/bitmark-inc/buybackd/fault"
)

type testConfig struct {
	DataDirectory string   `gluamapper:"data_directory"`
	UnitPrice     string   `gluamapper:"unit_price"`
	Listen        []string `gluamapper:"listen"`
}

const luaSource = `
local M = {}

M.data_directory = "/var/lib/buybackd"
M.unit_price = "0.5"
M.listen = {
    "127.0.0.1:2160",
    "[::1]:2160",
}

return M
`

func TestParseConfigurationFile(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err, "tempdir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "buybackd.conf")
	err = ioutil.WriteFile(fileName, []byte(luaSource), 0600)
	assert.Nil(t, err, "write error")

	var config testConfig
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "/var/lib/buybackd", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "0.5", config.UnitPrice, "wrong unit price")
	assert.Equal(t, []string{"127.0.0.1:2160", "[::1]:2160"}, config.Listen, "wrong listen")
}

func TestParseConfigurationFileBadTarget(t *testing.T) {

	var config testConfig
	err := configuration.ParseConfigurationFile("no-such-file", config)
	assert.Equal(t, fault.InvalidStructPointer, err, "wrong error")

	n := 42
	err = configuration.ParseConfigurationFile("no-such-file", &n)
	assert.Equal(t, fault.InvalidStructPointer, err, "wrong error")
}
