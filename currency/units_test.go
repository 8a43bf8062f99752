// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency_test

import (
	"testing"

	"github.com/bitmark-inc/buybackd/currency"
)

func TestParseUnits(t *testing.T) {

	items := []struct {
		in  string
		out uint64
		ok  bool
	}{
		{"0", 0, true},
		{"1", 100000000, true},
		{"1.5", 150000000, true},
		{"0.00000001", 1, true},
		{"21.00000001", 2100000001, true},
		{"100", 10000000000, true},
		{".5", 50000000, true},
		{"5.", 500000000, true},
		{"", 0, false},
		{".", 0, false},
		{"1..2", 0, false},
		{"1,2", 0, false},
		{"0.000000001", 0, false},
		{"abc", 0, false},
		{"-1", 0, false},
	}

	for i, item := range items {
		out, err := currency.ParseUnits(item.in)
		if item.ok {
			if err != nil {
				t.Errorf("%d: ParseUnits(%q) unexpected error: %v", i, item.in, err)
			} else if out != item.out {
				t.Errorf("%d: ParseUnits(%q) = %d  expected: %d", i, item.in, out, item.out)
			}
		} else if err == nil {
			t.Errorf("%d: ParseUnits(%q) unexpected success: %d", i, item.in, out)
		}
	}
}

func TestString(t *testing.T) {

	items := []struct {
		in  uint64
		out string
	}{
		{0, "0.00000000"},
		{1, "0.00000001"},
		{100000000, "1.00000000"},
		{150000000, "1.50000000"},
		{2100000001, "21.00000001"},
	}

	for i, item := range items {
		out := currency.String(item.in)
		if out != item.out {
			t.Errorf("%d: String(%d) = %q  expected: %q", i, item.in, out, item.out)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, value := range []uint64{0, 1, 99, 123456789, 10000000000} {
		out, err := currency.ParseUnits(currency.String(value))
		if err != nil {
			t.Fatalf("round trip error: %v", err)
		}
		if out != value {
			t.Errorf("round trip: %d → %d", value, out)
		}
	}
}
