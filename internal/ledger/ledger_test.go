// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math/rand"
	"testing"
)

func TestNewTransactionDerivesID(t *testing.T) {
	txn := NewTransaction(1, 2, 5.0, 10.0)
	if txn.ID == "" {
		t.Fatal("expected a non-empty transaction id")
	}
	if txn.IsCoinbase() {
		t.Error("ordinary transaction should not report IsCoinbase")
	}
}

func TestNewCoinbase(t *testing.T) {
	cb := NewCoinbase(3, 1.5)
	if !cb.IsCoinbase() {
		t.Error("coinbase transaction should report IsCoinbase")
	}
	if cb.Payee != 3 || cb.Value != CoinbaseReward {
		t.Errorf("coinbase = %+v, want payee=3 value=%v", cb, CoinbaseReward)
	}
}

func TestAccountBalanceCloneIsIndependent(t *testing.T) {
	orig := AccountBalance{0: 10, 1: 20}
	clone := orig.Clone()
	clone[0] = 999
	if orig[0] != 10 {
		t.Errorf("mutating clone affected original: %v", orig)
	}
}

func TestAccountBalanceSum(t *testing.T) {
	b := AccountBalance{0: 10, 1: 20, 2: 5.5}
	if got, want := b.Sum(), 35.5; got != want {
		t.Errorf("Sum() = %v, want %v", got, want)
	}
}

func TestBlockCloneDeepCopies(t *testing.T) {
	b := NewBlock(NoParent, 1, 1.0, 0, []Transaction{NewTransaction(0, 1, 1, 0)}, NewCoinbase(0, 1.0), AccountBalance{0: 50})
	clone := b.Clone()
	clone.Transactions[0].Value = 999
	clone.AccountBalances[0] = 999

	if b.Transactions[0].Value == 999 {
		t.Error("mutating clone's transactions affected original")
	}
	if b.AccountBalances[0] == 999 {
		t.Error("mutating clone's balances affected original")
	}
}

func TestNewGenesisFundsEveryNode(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewGenesis(rng, 5)

	if !g.IsGenesis() {
		t.Fatal("genesis block should report IsGenesis")
	}
	if len(g.Transactions) != 5 {
		t.Fatalf("expected 5 genesis transactions, got %d", len(g.Transactions))
	}
	for i := 0; i < 5; i++ {
		v, ok := g.AccountBalances[i]
		if !ok {
			t.Errorf("node %d has no genesis balance", i)
			continue
		}
		if v < 50 || v > 500 {
			t.Errorf("node %d genesis balance %v outside [50,500]", i, v)
		}
	}
}
