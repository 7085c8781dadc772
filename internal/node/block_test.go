// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"testing"

	"github.com/daglabs/blocksim/internal/ledger"
)

func mineNext(t *testing.T, n *Node, timestamp float64) *ledger.Block {
	t.Helper()
	candidate := n.BuildCandidate(10)
	b := candidate.Seal(timestamp)
	if err := n.MineOwnBlock(b); err != nil {
		t.Fatalf("MineOwnBlock: %v", err)
	}
	return b
}

func TestAcceptBlockPromotesExtension(t *testing.T) {
	g := ledger.NewBlock(ledger.NoParent, 0, 0, -1, nil, ledger.Transaction{}, ledger.AccountBalance{0: 100, 1: 100})
	miner := New(0, false, 0.1, Honest, g)
	b := mineNext(t, miner, 1.0)

	receiver := New(1, false, 0.1, Honest, g)
	outcome, err := receiver.AcceptBlock(b)
	if err != nil {
		t.Fatalf("AcceptBlock: %v", err)
	}
	if outcome != Promoted {
		t.Fatalf("outcome = %v, want Promoted", outcome)
	}
	if receiver.Store.Tip().ID != b.ID {
		t.Error("receiver's tip should be the accepted block")
	}
}

func TestAcceptBlockDuplicate(t *testing.T) {
	g := ledger.NewBlock(ledger.NoParent, 0, 0, -1, nil, ledger.Transaction{}, ledger.AccountBalance{0: 100})
	miner := New(0, false, 0.1, Honest, g)
	b := mineNext(t, miner, 1.0)

	receiver := New(1, false, 0.1, Honest, g)
	if _, err := receiver.AcceptBlock(b); err != nil {
		t.Fatalf("AcceptBlock: %v", err)
	}
	outcome, err := receiver.AcceptBlock(b)
	if err != nil {
		t.Fatalf("AcceptBlock (second delivery): %v", err)
	}
	if outcome != Duplicate {
		t.Errorf("outcome = %v, want Duplicate", outcome)
	}
}

func TestAcceptBlockParksOrphan(t *testing.T) {
	g := ledger.NewBlock(ledger.NoParent, 0, 0, -1, nil, ledger.Transaction{}, ledger.AccountBalance{0: 100})
	miner := New(0, false, 0.1, Honest, g)
	first := mineNext(t, miner, 1.0)
	second := mineNext(t, miner, 2.0)

	receiver := New(1, false, 0.1, Honest, g)
	outcome, err := receiver.AcceptBlock(second) // parent (first) unknown to receiver
	if err != nil {
		t.Fatalf("AcceptBlock: %v", err)
	}
	if outcome != Parked {
		t.Fatalf("outcome = %v, want Parked", outcome)
	}

	got, ok := receiver.TakeOrphanChild(first.ID)
	if !ok || got.ID != second.ID {
		t.Fatalf("TakeOrphanChild(first.ID) = %v, %v, want second", got, ok)
	}
}

func TestAcceptBlockReorgRewindsMempool(t *testing.T) {
	g := ledger.NewBlock(ledger.NoParent, 0, 0, -1, nil, ledger.Transaction{}, ledger.AccountBalance{0: 100, 1: 100})

	a := New(0, false, 0.1, Honest, g)
	b := New(1, false, 0.1, Honest, g)

	txnOnA := ledger.NewTransaction(0, 1, 5, 0.5)
	a.Mempool.Add(txnOnA)
	blockA := mineNext(t, a, 1.0) // includes txnOnA

	blockB1 := mineNext(t, b, 1.1) // b's own first block, competes with blockA at position 1

	if _, err := a.AcceptBlock(blockB1); err != nil {
		t.Fatalf("a.AcceptBlock(blockB1): %v", err)
	}
	// Still at the same depth: a's own block (first-seen) remains tip.
	if a.Store.Tip().ID != blockA.ID {
		t.Fatalf("a's tip = %s, want to remain blockA (%s) by first-seen tie-break", a.Store.Tip().ID, blockA.ID)
	}

	blockB2 := mineNext(t, b, 2.0) // extends b's chain to position 2, now strictly longer

	outcome, err := a.AcceptBlock(blockB2)
	if err != nil {
		t.Fatalf("a.AcceptBlock(blockB2): %v", err)
	}
	if outcome != Promoted {
		t.Fatalf("outcome = %v, want Promoted", outcome)
	}
	if a.Store.Tip().ID != blockB2.ID {
		t.Error("a should have reorged onto b's longer chain")
	}
	// txnOnA was only in the abandoned blockA; after rewinding, it belongs
	// back in the mempool.
	if !a.Mempool.Has(string(txnOnA.ID)) {
		t.Error("reorg should restore the abandoned block's transactions to the mempool")
	}
}
