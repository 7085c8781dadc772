// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainstore

import (
	"math"

	"github.com/daglabs/blocksim/internal/ledger"
	"github.com/daglabs/blocksim/internal/mempool"
	"github.com/pkg/errors"
)

// ErrVerification is the sentinel wrapped by every block-rejection reason.
var ErrVerification = errors.New("block verification failed")

// roundPlaces is the precision used when comparing computed balances
// against a block's claimed balances.
const roundPlaces = 5

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// Verify checks block b against its parent's account-balance snapshot and
// the working mempool m that represents the receiver's state just before
// b. knownGlobally reports whether the receiver has ever seen a
// transaction with the given id, even if it isn't in m (tolerating
// attacker-authored transactions that bypassed normal gossip).
func Verify(b, parent *ledger.Block, m *mempool.Pool, knownGlobally func(id string) bool) error {
	seen := make(map[string]bool, len(b.Transactions))
	for _, txn := range b.Transactions {
		id := string(txn.ID)
		if seen[id] {
			return errors.Wrapf(ErrVerification, "duplicate transaction %s within block", id)
		}
		seen[id] = true

		if !m.Has(id) && knownGlobally(id) {
			return errors.Wrapf(ErrVerification, "transaction %s not in mempool but previously seen", id)
		}
	}

	delta := make(map[int]float64, len(b.Transactions)+1)
	for _, txn := range b.Transactions {
		if !txn.IsCoinbase() {
			delta[txn.Payer] -= txn.Value
		}
		delta[txn.Payee] += txn.Value
	}
	delta[b.Coinbase.Payee] += b.Coinbase.Value

	for node := range delta {
		got := parent.AccountBalances[node] + delta[node]
		if got < -1e-9 {
			return errors.Wrapf(ErrVerification, "negative balance for node %d", node)
		}
	}

	for node, want := range b.AccountBalances {
		got := parent.AccountBalances[node] + delta[node]
		if round(got, roundPlaces) != round(want, roundPlaces) {
			return errors.Wrapf(ErrVerification, "balance mismatch for node %d: computed %.5f, block claims %.5f", node, got, want)
		}
	}

	return nil
}
