// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import "github.com/daglabs/blocksim/internal/ledger"

// EnqueuePrivate appends a newly mined block to the adversary's private
// queue instead of gossiping it. The block must already have been
// accepted into the node's own store via MineOwnBlock.
func (n *Node) EnqueuePrivate(b *ledger.Block) {
	n.PrivateQueue = append(n.PrivateQueue, b)
}

// HandleHonestBlock implements the adversary's withholding decision,
// invoked after an incoming honest block H has already been run through
// AcceptBlock against the adversary's local store. It returns the blocks
// (if any) that should now be released to all peers, and mutates the
// private queue accordingly.
//
// honestOutcome is the AcceptOutcome AcceptBlock(h) returned for H.
func (n *Node) HandleHonestBlock(h *ledger.Block, honestOutcome AcceptOutcome) []*ledger.Block {
	if honestOutcome == Promoted {
		// H outpaced the adversary's private chain: the queue's lead is
		// gone, so nothing in it is worth releasing anymore.
		n.PrivateQueue = nil
		return nil
	}

	if len(n.PrivateQueue) == 0 || n.PrivateQueue[0].Position != h.Position {
		return nil
	}

	switch n.Label {
	case Selfish:
		if len(n.PrivateQueue) == 2 {
			released := n.PrivateQueue
			n.PrivateQueue = nil
			return released
		}
		released := append([]*ledger.Block(nil), n.PrivateQueue[0])
		n.PrivateQueue = n.PrivateQueue[1:]
		return released
	case Stubborn:
		released := append([]*ledger.Block(nil), n.PrivateQueue[0])
		n.PrivateQueue = n.PrivateQueue[1:]
		return released
	default:
		return nil
	}
}
