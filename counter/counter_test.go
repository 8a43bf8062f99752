// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/buybackd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	if !c.IsZero() {
		t.Fatal("new counter is not zero")
	}

	if 1 != c.Increment() {
		t.Error("wrong increment result")
	}
	if 0 != c.Decrement() {
		t.Error("wrong decrement result")
	}
	if !c.IsZero() {
		t.Error("counter did not return to zero")
	}
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	n := 50
	for i := 0; i < n; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j += 1 {
				c.Increment()
			}
			for j := 0; j < 100; j += 1 {
				c.Decrement()
			}
		}()
	}
	wg.Wait()

	if !c.IsZero() {
		t.Errorf("counter not zero after balanced operations: %d", c.Uint64())
	}
}
