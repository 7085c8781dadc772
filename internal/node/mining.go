// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/daglabs/blocksim/internal/chainstore"
	"github.com/daglabs/blocksim/internal/chainutil"
	"github.com/daglabs/blocksim/internal/ledger"
)

// Candidate is an in-progress block: everything that can be determined
// before the block's mining completion time is known. Sealing it with the
// completion timestamp derives the final, content-addressed Block.
type Candidate struct {
	ParentID     chainutil.ID
	Position     int
	Creator      int
	Transactions []ledger.Transaction
	Balances     ledger.AccountBalance
}

// BuildCandidate copies the tip's balance snapshot, greedily includes
// mempool transactions (in insertion order) whose payer can afford them,
// and stops at maxBlockLength-1 transactions, leaving room for the
// coinbase.
func (n *Node) BuildCandidate(maxBlockLength int) Candidate {
	tip := n.Store.Tip()
	balances := tip.AccountBalances.Clone()

	capacity := maxBlockLength - 1
	included := make([]ledger.Transaction, 0, capacity)
	for _, txn := range n.Mempool.Ordered() {
		if len(included) >= capacity {
			break
		}
		if balances[txn.Payer] >= txn.Value {
			balances[txn.Payer] -= txn.Value
			balances[txn.Payee] += txn.Value
			included = append(included, txn)
		}
	}

	return Candidate{
		ParentID:     tip.ID,
		Position:     tip.Position + 1,
		Creator:      n.ID,
		Transactions: included,
		Balances:     balances,
	}
}

// Seal finalizes a candidate at its mining-completion time t, deriving the
// block's id and coinbase from the true timestamp.
func (c Candidate) Seal(t float64) *ledger.Block {
	coinbase := ledger.NewCoinbase(c.Creator, t)
	balances := c.Balances.Clone()
	balances[c.Creator] += ledger.CoinbaseReward
	return ledger.NewBlock(c.ParentID, c.Position, t, c.Creator, c.Transactions, coinbase, balances)
}

// IsStale reports whether a candidate sealed against ParentID is no
// longer buildable on n's current tip, checked when a mining-completion
// event is dispatched.
func (c Candidate) IsStale(n *Node) bool {
	return c.ParentID != n.Store.Tip().ID
}

// MineOwnBlock verifies a block this node just finished mining against
// the node's own tip and mempool, adds it to the store, promotes it to
// tip (a single-block extension always wins), and removes its
// transactions from the mempool. The caller must already have confirmed
// the candidate is not stale.
func (n *Node) MineOwnBlock(b *ledger.Block) error {
	tip := n.Store.Tip()
	if err := chainstore.Verify(b, tip, n.Mempool, n.knownGlobally); err != nil {
		return err
	}
	n.Store.Accept(b)
	n.Store.PromoteTip(b)
	n.Mempool.RemoveAll(b.Transactions)
	return nil
}
