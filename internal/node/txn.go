// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"math/rand"

	"github.com/daglabs/blocksim/internal/ledger"
)

// minTransactionValue is the lower bound of the Uniform(0.0001, B) draw a
// new transaction's value comes from.
const minTransactionValue = 0.0001

// CreateTransaction picks a payee uniformly from the other numNodes-1
// nodes, draws an amount from Uniform(0.0001, B) where B is the tip
// balance, and adds the resulting transaction to the mempool. It returns
// (nil, false) when B doesn't leave room for the minimum transaction
// value; the node still reschedules its next transaction-creation tick,
// but emits nothing this one.
func (n *Node) CreateTransaction(rng *rand.Rand, numNodes int, now float64) (*ledger.Transaction, bool) {
	balance := n.Store.Tip().AccountBalances[n.ID]
	if balance <= minTransactionValue {
		return nil, false
	}

	payee := n.ID
	for payee == n.ID {
		payee = rng.Intn(numNodes)
	}

	value := minTransactionValue + rng.Float64()*(balance-minTransactionValue)
	txn := ledger.NewTransaction(n.ID, payee, value, now)

	n.Mempool.Add(txn)
	n.markSeen(string(txn.ID))
	return &txn, true
}

// ReceiveTransaction ingests an incoming transaction: if it is unknown to
// n (never seen, not merely absent from the live mempool), insert it and
// report true so the caller re-gossips it. A transaction n has already
// seen, whether still pending or already committed, is dropped, keeping
// repeated delivery idempotent.
func (n *Node) ReceiveTransaction(txn ledger.Transaction) bool {
	if n.everSeen[string(txn.ID)] {
		return false
	}
	n.Mempool.Add(txn)
	n.markSeen(string(txn.ID))
	return true
}
