// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math/rand"

	"github.com/daglabs/blocksim/internal/chainutil"
)

// genesisCreator is the Creator of the genesis block: no node mined it, so
// there is no creator in the mining sense (and its Coinbase is left empty).
const genesisCreator = -1

// NewGenesis seeds one funding transaction per node, drawn from
// Uniform(50, 500), and returns the resulting genesis block at position
// 0. Every node needs a starting balance; without one, its first
// transaction-creation attempt could never pass the balance check before
// any block has been mined.
func NewGenesis(rng *rand.Rand, numNodes int) *Block {
	txns := make([]Transaction, numNodes)
	balances := make(AccountBalance, numNodes)

	for i := 0; i < numNodes; i++ {
		value := 50 + rng.Float64()*450
		txns[i] = NewTransaction(CoinbasePayer, i, value, 0)
		balances[i] = value
	}

	ids := make([]chainutil.ID, 0, numNodes)
	for _, txn := range txns {
		ids = append(ids, txn.ID)
	}

	return &Block{
		ID:              chainutil.BlockID(0, ids),
		ParentID:        NoParent,
		Position:        0,
		Timestamp:       0,
		Creator:         genesisCreator,
		Transactions:    txns,
		Coinbase:        Transaction{},
		AccountBalances: balances,
	}
}
