// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/bitmark-inc/buybackd/util"
)

func TestCanonical(t *testing.T) {

	type item struct {
		in  string
		out string
		v6  bool
	}

	testData := []item{
		{"127.0.0.1:1234", "tcp://127.0.0.1:1234", false},
		{" 127.0.0.1 : 1234 ", "tcp://127.0.0.1:1234", false},
		{"[::1]:1234", "tcp://[::1]:1234", true},
		{"[2404:6800:4008:c07::66]:443", "tcp://[2404:6800:4008:c07::66]:443", true},
	}

	for i, d := range testData {
		c, err := util.NewConnection(d.in)
		if nil != err {
			t.Fatalf("%d: connection error: %v", i, err)
		}
		s, v6 := c.CanonicalIPandPort("tcp://")
		if s != d.out {
			t.Errorf("%d: got: %q  expected: %q", i, s, d.out)
		}
		if v6 != d.v6 {
			t.Errorf("%d: got v6: %v  expected: %v", i, v6, d.v6)
		}
	}
}

func TestCanonicalErrors(t *testing.T) {

	testData := []string{
		"",
		"127.0.0.1",
		"256.0.0.1:1234",
		"127.0.0.1:0",
		"127.0.0.1:65536",
		"*:1234",
		"localhost:1234",
	}

	for i, d := range testData {
		_, err := util.NewConnection(d)
		if nil == err {
			t.Errorf("%d: unexpected success: %q", i, d)
		}
	}
}

func TestEnsureAbsolute(t *testing.T) {
	if s := util.EnsureAbsolute("/var/lib/buybackd", "data.leveldb"); "/var/lib/buybackd/data.leveldb" != s {
		t.Errorf("got: %q", s)
	}
	if s := util.EnsureAbsolute("/var/lib/buybackd", "/tmp/data.leveldb"); "/tmp/data.leveldb" != s {
		t.Errorf("got: %q", s)
	}
}
