// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"testing"

	"github.com/daglabs/blocksim/internal/ledger"
)

func TestBuildCandidateRespectsBalance(t *testing.T) {
	g := ledger.NewBlock(ledger.NoParent, 0, 0, -1, nil, ledger.Transaction{}, ledger.AccountBalance{0: 10, 1: 0})
	n := New(0, false, 0.1, Honest, g)

	affordable := ledger.NewTransaction(0, 1, 5, 1)
	tooExpensive := ledger.NewTransaction(0, 1, 50, 1)
	n.Mempool.Add(affordable)
	n.Mempool.Add(tooExpensive)

	candidate := n.BuildCandidate(10)
	if len(candidate.Transactions) != 1 || candidate.Transactions[0].ID != affordable.ID {
		t.Fatalf("candidate.Transactions = %v, want only the affordable transaction", candidate.Transactions)
	}
}

func TestBuildCandidateCapsAtMaxBlockLength(t *testing.T) {
	g := ledger.NewBlock(ledger.NoParent, 0, 0, -1, nil, ledger.Transaction{}, ledger.AccountBalance{0: 1000, 1: 0})
	n := New(0, false, 0.1, Honest, g)

	for i := 0; i < 5; i++ {
		n.Mempool.Add(ledger.NewTransaction(0, 1, 1, float64(i)))
	}

	candidate := n.BuildCandidate(3) // room for 2 transactions + coinbase
	if len(candidate.Transactions) != 2 {
		t.Errorf("len(candidate.Transactions) = %d, want 2", len(candidate.Transactions))
	}
}

func TestSealAssignsTimestamp(t *testing.T) {
	g := ledger.NewBlock(ledger.NoParent, 0, 0, -1, nil, ledger.Transaction{}, ledger.AccountBalance{0: 100})
	n := New(0, false, 0.1, Honest, g)

	candidate := n.BuildCandidate(10)
	b := candidate.Seal(42.5)

	if b.Timestamp != 42.5 {
		t.Errorf("b.Timestamp = %v, want 42.5", b.Timestamp)
	}
	if b.Coinbase.Payee != 0 || b.AccountBalances[0] != 150 {
		t.Errorf("coinbase reward not applied: coinbase=%+v balances=%v", b.Coinbase, b.AccountBalances)
	}
}

func TestCandidateIsStaleAfterTipMoves(t *testing.T) {
	g := ledger.NewBlock(ledger.NoParent, 0, 0, -1, nil, ledger.Transaction{}, ledger.AccountBalance{0: 100})
	n := New(0, false, 0.1, Honest, g)

	candidate := n.BuildCandidate(10)
	if candidate.IsStale(n) {
		t.Fatal("fresh candidate should not be stale")
	}

	other := candidate.Seal(1.0)
	if err := n.MineOwnBlock(other); err != nil {
		t.Fatalf("MineOwnBlock: %v", err)
	}

	if !candidate.IsStale(n) {
		t.Error("candidate built on the old tip should be stale after the tip advances")
	}
}

func TestMineOwnBlockPromotesTip(t *testing.T) {
	g := ledger.NewBlock(ledger.NoParent, 0, 0, -1, nil, ledger.Transaction{}, ledger.AccountBalance{0: 100})
	n := New(0, false, 0.1, Honest, g)

	txn := ledger.NewTransaction(0, 1, 10, 0.5)
	n.Mempool.Add(txn)

	candidate := n.BuildCandidate(10)
	b := candidate.Seal(1.0)

	if err := n.MineOwnBlock(b); err != nil {
		t.Fatalf("MineOwnBlock: %v", err)
	}
	if n.Store.Tip().ID != b.ID {
		t.Error("MineOwnBlock should promote the new block to tip")
	}
	if n.Mempool.Has(string(txn.ID)) {
		t.Error("MineOwnBlock should remove the mined transaction from the mempool")
	}
}
