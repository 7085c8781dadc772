// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger defines the value types shared by every node in the
// simulation: transactions, blocks, and account-balance snapshots. Every
// type here is immutable by convention; handlers that need to mutate a
// delivered payload must Clone it first so state is never aliased across
// nodes.
package ledger

import "github.com/daglabs/blocksim/internal/chainutil"

// CoinbaseReward is the fixed reward value paid to a block's creator.
const CoinbaseReward = 50

// CoinbasePayer marks a transaction as a coinbase: it has no payer.
const CoinbasePayer = -1

// Transaction is a single payer-to-payee value transfer, or a coinbase
// reward when Payer == CoinbasePayer.
type Transaction struct {
	ID        chainutil.ID
	Payer     int
	Payee     int
	Value     float64
	Timestamp float64
}

// NewTransaction builds a transaction and derives its id from the
// (payer, payee, value, timestamp) tuple.
func NewTransaction(payer, payee int, value, timestamp float64) Transaction {
	return Transaction{
		ID:        chainutil.TransactionID(payer, payee, value, timestamp),
		Payer:     payer,
		Payee:     payee,
		Value:     value,
		Timestamp: timestamp,
	}
}

// NewCoinbase builds the reward transaction automatically included in
// every block.
func NewCoinbase(creator int, timestamp float64) Transaction {
	return Transaction{
		ID:        chainutil.CoinbaseID(creator, timestamp),
		Payer:     CoinbasePayer,
		Payee:     creator,
		Value:     CoinbaseReward,
		Timestamp: timestamp,
	}
}

// IsCoinbase reports whether txn is a coinbase reward.
func (txn Transaction) IsCoinbase() bool {
	return txn.Payer == CoinbasePayer
}

// Clone returns a value copy of txn. Transaction has no reference fields,
// so this is the identity function; it exists so callers never need to
// special-case "is this type already safe to hand to another node".
func (txn Transaction) Clone() Transaction {
	return txn
}
