// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package simulator

import (
	"github.com/daglabs/blocksim/internal/latency"
	"github.com/daglabs/blocksim/internal/ledger"
	"github.com/daglabs/blocksim/internal/node"
	"github.com/daglabs/blocksim/internal/scheduler"
)

// gossipTxn schedules RECV_TXN to every peer of n, excluding excludePeer
// when exclude is true.
func (s *Simulator) gossipTxn(n *node.Node, txn ledger.Transaction, now float64, excludePeer int, exclude bool) {
	for _, link := range n.Peers {
		if exclude && link.Peer == excludePeer {
			continue
		}
		peer := s.nodes[link.Peer]
		bw := latency.Bandwidth(n.Slow, peer.Slow)
		lat := latency.Compute(s.rng, link.Delay, transactionMessageSizeMb, bw)
		txnCopy := txn.Clone()
		s.queue.Add(&scheduler.Event{
			Time:       round4(now + lat),
			Kind:       scheduler.RecvTxn,
			NodeID:     link.Peer,
			Txn:        &txnCopy,
			FromNodeID: n.ID,
		})
	}
}

// gossipBlock schedules RECV_BLOCK to every peer of n, excluding
// excludePeer when exclude is true. Each peer gets its own deep clone of
// b so no two nodes ever alias the same *ledger.Block.
func (s *Simulator) gossipBlock(n *node.Node, b *ledger.Block, now float64, excludePeer int, exclude bool) {
	messageSize := float64(len(b.Transactions)+1) * transactionMessageSizeMb
	for _, link := range n.Peers {
		if exclude && link.Peer == excludePeer {
			continue
		}
		peer := s.nodes[link.Peer]
		bw := latency.Bandwidth(n.Slow, peer.Slow)
		lat := latency.Compute(s.rng, link.Delay, messageSize, bw)
		s.queue.Add(&scheduler.Event{
			Time:       round4(now + lat),
			Kind:       scheduler.RecvBlock,
			NodeID:     link.Peer,
			Block:      b.Clone(),
			FromNodeID: n.ID,
		})
	}
}
