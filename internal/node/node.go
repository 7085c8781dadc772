// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node implements the per-node state machine: peer list, mempool,
// hashing power, node label, and, for the adversary, the private block
// queue. It knows nothing about the event queue; the simulator package
// wires node methods to scheduler events.
package node

import (
	"github.com/daglabs/blocksim/internal/chainstore"
	"github.com/daglabs/blocksim/internal/ledger"
	"github.com/daglabs/blocksim/internal/mempool"
	"github.com/daglabs/blocksim/internal/peergraph"
)

// Label tags a node's mining behavior as a variant the event handler
// switches on, rather than a type hierarchy.
type Label int

// The three node labels.
const (
	Honest Label = iota
	Selfish
	Stubborn
)

// Node is one peer's complete local state.
type Node struct {
	ID        int
	Slow      bool
	HashPower float64
	Label     Label
	Peers     []peergraph.Link

	Mempool *mempool.Pool
	Store   *chainstore.Store

	// PrivateQueue holds blocks an adversary has mined but not yet
	// released, in mining order. It is always empty for Label == Honest.
	PrivateQueue []*ledger.Block

	// everSeen is the node's global transaction record, used by block
	// verification to tolerate attacker-authored transactions that
	// bypassed ordinary gossip.
	everSeen map[string]bool
}

// New builds a node seeded with the genesis block and an empty mempool.
func New(id int, slow bool, hashPower float64, label Label, genesis *ledger.Block) *Node {
	return &Node{
		ID:        id,
		Slow:      slow,
		HashPower: hashPower,
		Label:     label,
		Mempool:   mempool.New(),
		Store:     chainstore.New(genesis),
		everSeen:  make(map[string]bool),
	}
}

// AddPeer appends a peer link.
func (n *Node) AddPeer(peer int, delay float64) {
	n.Peers = append(n.Peers, peergraph.Link{Peer: peer, Delay: delay})
}

// IsAdversary reports whether n runs a block-withholding strategy.
func (n *Node) IsAdversary() bool {
	return n.Label == Selfish || n.Label == Stubborn
}

func (n *Node) markSeen(id string) {
	n.everSeen[id] = true
}

func (n *Node) knownGlobally(id string) bool {
	return n.everSeen[id]
}
