// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import "github.com/daglabs/blocksim/internal/chainutil"

// NoParent is the sentinel parent id carried by the genesis block.
const NoParent = chainutil.ID("")

// Block is a node in the block tree: a parent reference, a position
// (depth), an ordered transaction list terminated by a coinbase reward,
// and the account-balance snapshot that results from applying every
// transaction on the root-to-block path.
type Block struct {
	ID              chainutil.ID
	ParentID        chainutil.ID
	Position        int
	Timestamp       float64
	Creator         int
	Transactions    []Transaction
	Coinbase        Transaction
	AccountBalances AccountBalance
}

// AllTransactions returns the block's transactions followed by its
// coinbase, the order chainutil.BlockID hashes over.
func (b *Block) AllTransactions() []Transaction {
	all := make([]Transaction, 0, len(b.Transactions)+1)
	all = append(all, b.Transactions...)
	all = append(all, b.Coinbase)
	return all
}

// IsGenesis reports whether b is the root of the tree.
func (b *Block) IsGenesis() bool {
	return b.ParentID == NoParent
}

// Clone returns a deep copy of b: a new transaction slice and a new
// balance map, so a receiving node may freely mutate its local copy (e.g.
// set Timestamp on mining completion) without aliasing the sender's state.
func (b *Block) Clone() *Block {
	out := *b
	out.Transactions = make([]Transaction, len(b.Transactions))
	copy(out.Transactions, b.Transactions)
	out.AccountBalances = b.AccountBalances.Clone()
	return &out
}

// NewBlock derives a block's id from its timestamp and transaction ids
// (transactions followed by the coinbase) and returns the fully populated
// value.
func NewBlock(parent chainutil.ID, position int, timestamp float64, creator int, txns []Transaction, coinbase Transaction, balances AccountBalance) *Block {
	ids := make([]chainutil.ID, 0, len(txns)+1)
	for _, txn := range txns {
		ids = append(ids, txn.ID)
	}
	ids = append(ids, coinbase.ID)

	return &Block{
		ID:              chainutil.BlockID(timestamp, ids),
		ParentID:        parent,
		Position:        position,
		Timestamp:       timestamp,
		Creator:         creator,
		Transactions:    txns,
		Coinbase:        coinbase,
		AccountBalances: balances,
	}
}
