// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/daglabs/blocksim/internal/chainstore"
	"github.com/daglabs/blocksim/internal/chainutil"
	"github.com/daglabs/blocksim/internal/ledger"
)

// AcceptOutcome is the decision an AcceptBlock call resolves to.
type AcceptOutcome int

// The possible outcomes of AcceptBlock.
const (
	Rejected AcceptOutcome = iota
	Duplicate
	Parked
	Accepted
	Promoted
)

// AcceptBlock locates the common ancestor of b and the current tip,
// simulates the mempool the receiver would have just before b by
// rewinding the tip's path back to the ancestor and replaying the
// ancestor's path forward to b's parent, verifies b against that working
// mempool, and, on success, stores b and promotes it to tip if it
// strictly extends the tip by exactly one position.
func (n *Node) AcceptBlock(b *ledger.Block) (AcceptOutcome, error) {
	if n.Store.Has(b.ID) || n.Store.IsOrphan(b.ID) {
		return Duplicate, nil
	}

	parent, ok := n.Store.Get(b.ParentID)
	if !ok {
		n.Store.ParkOrphan(b)
		return Parked, nil
	}

	tip := n.Store.Tip()
	ancestor, err := n.Store.CommonAncestor(tip, parent)
	if err != nil {
		return Rejected, err
	}

	working := n.Mempool.Clone()

	rewind, err := n.Store.PathTo(ancestor, tip)
	if err != nil {
		return Rejected, err
	}
	for _, blk := range rewind {
		for _, txn := range blk.Transactions {
			working.Add(txn)
		}
	}

	replay, err := n.Store.PathTo(ancestor, parent)
	if err != nil {
		return Rejected, err
	}
	for _, blk := range replay {
		working.RemoveAll(blk.Transactions)
	}

	if err := chainstore.Verify(b, parent, working, n.knownGlobally); err != nil {
		return Rejected, err
	}

	n.Store.Accept(b)
	for _, txn := range b.Transactions {
		n.markSeen(string(txn.ID))
	}

	if b.Position == tip.Position+1 {
		n.Store.PromoteTip(b)
		working.RemoveAll(b.Transactions)
		n.Mempool = working
		return Promoted, nil
	}
	return Accepted, nil
}

// TakeOrphanChild returns (and un-parks) the orphan block waiting on
// parentID, if any, so the caller can resolve it in turn.
func (n *Node) TakeOrphanChild(parentID chainutil.ID) (*ledger.Block, bool) {
	return n.Store.TakeOrphan(parentID)
}
