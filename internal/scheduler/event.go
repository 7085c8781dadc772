// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scheduler implements the single time-ordered event queue that
// drives the whole simulation.
package scheduler

import "github.com/daglabs/blocksim/internal/ledger"

// Kind identifies the transition an Event drives.
type Kind int

// The five event kinds the simulation dispatches on.
const (
	CreateTxn Kind = iota
	RecvTxn
	StartMining
	EndMining
	RecvBlock
)

func (k Kind) String() string {
	switch k {
	case CreateTxn:
		return "CREATE_TXN"
	case RecvTxn:
		return "RECV_TXN"
	case StartMining:
		return "START_MINING"
	case EndMining:
		return "END_MINING"
	case RecvBlock:
		return "RECV_BLOCK"
	default:
		return "UNKNOWN"
	}
}

// Event is a single time-stamped transition targeting one node, with
// kind-specific payload fields (only the ones relevant to Kind are set).
type Event struct {
	Time   float64
	Kind   Kind
	NodeID int

	// seq is the insertion order, used to break time ties deterministically.
	seq int

	Txn        *ledger.Transaction
	FromNodeID int
	Block      *ledger.Block

	// Extra carries a kind-specific payload the scheduler itself doesn't
	// need to understand, namely the node.Candidate value an END_MINING
	// event completes. Kept generic here rather than importing node, so the
	// dependency runs simulator -> {scheduler, node}, not scheduler -> node.
	Extra interface{}
}
