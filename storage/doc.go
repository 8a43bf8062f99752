// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a LevelDB database with a series of prefixed pools holding
// the value ledger accounts, registry state, provenance records and the
// append-only audit event log
//
// every custodian operation runs inside a single Transaction; all reads
// made through the transaction observe its uncommitted writes, and a
// Discard removes every pending write so a failed operation leaves no
// partial state behind
package storage
