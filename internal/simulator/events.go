// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package simulator

import (
	"github.com/daglabs/blocksim/internal/ledger"
	"github.com/daglabs/blocksim/internal/node"
	"github.com/daglabs/blocksim/internal/scheduler"
)

// Run drains the event queue until it empties or the next event's time
// reaches the simulation horizon.
func (s *Simulator) Run() {
	s.primeEvents()

	for {
		ev, ok := s.queue.Pop()
		if !ok {
			break
		}
		if ev.Time >= s.cfg.SimulationTime {
			break
		}
		s.currentTime = ev.Time
		s.reportProgress()
		s.dispatch(ev)
	}
}

func (s *Simulator) reportProgress() {
	if s.cfg.SimulationTime <= 0 {
		return
	}
	for s.currentTime >= s.nextReportAt && s.nextReportAt < s.cfg.SimulationTime {
		s.log.Infof("simulation progress: t=%.4f/%.4f", s.currentTime, s.cfg.SimulationTime)
		s.nextReportAt += s.cfg.SimulationTime / 20
	}
}

func (s *Simulator) dispatch(ev *scheduler.Event) {
	switch ev.Kind {
	case scheduler.CreateTxn:
		s.handleCreateTxn(ev)
	case scheduler.RecvTxn:
		s.handleRecvTxn(ev)
	case scheduler.StartMining:
		s.handleStartMining(ev)
	case scheduler.EndMining:
		s.handleEndMining(ev)
	case scheduler.RecvBlock:
		s.handleRecvBlock(ev)
	}
}

func (s *Simulator) handleCreateTxn(ev *scheduler.Event) {
	n := s.nodes[ev.NodeID]
	if txn, ok := n.CreateTransaction(s.rng, len(s.nodes), ev.Time); ok {
		s.gossipTxn(n, *txn, ev.Time, n.ID, false)
	}

	dt := s.rng.ExpFloat64() * s.cfg.InterArrivalTime
	s.queue.Add(&scheduler.Event{
		Time:   round4(ev.Time + dt),
		Kind:   scheduler.CreateTxn,
		NodeID: n.ID,
	})
}

func (s *Simulator) handleRecvTxn(ev *scheduler.Event) {
	n := s.nodes[ev.NodeID]
	if n.ReceiveTransaction(*ev.Txn) {
		s.gossipTxn(n, *ev.Txn, ev.Time, ev.FromNodeID, true)
	}
}

func (s *Simulator) handleStartMining(ev *scheduler.Event) {
	s.scheduleNextMining(s.nodes[ev.NodeID], ev.Time)
}

func (s *Simulator) handleEndMining(ev *scheduler.Event) {
	n := s.nodes[ev.NodeID]
	candidate := ev.Extra.(node.Candidate)
	if candidate.IsStale(n) {
		// A competing block already moved the tip; a fresh END_MINING was
		// scheduled when that happened, so this one is simply dropped.
		return
	}

	b := candidate.Seal(ev.Time)
	if err := n.MineOwnBlock(b); err != nil {
		s.log.Warnf("node %d: mined block failed self-verification: %v", n.ID, err)
		return
	}

	if n.Label == node.Honest {
		s.gossipBlock(n, b, ev.Time, n.ID, false)
	} else {
		n.EnqueuePrivate(b)
	}

	s.scheduleNextMining(n, ev.Time)
}

func (s *Simulator) handleRecvBlock(ev *scheduler.Event) {
	n := s.nodes[ev.NodeID]
	b := ev.Block

	tipBefore := n.Store.Tip().ID
	outcome, err := n.AcceptBlock(b)
	if err != nil {
		s.log.Debugf("node %d: rejected block %s: %v", n.ID, b.ID, err)
		return
	}

	if outcome == node.Accepted || outcome == node.Promoted {
		s.gossipBlock(n, b, ev.Time, ev.FromNodeID, true)
		s.resolveOrphans(n, b, ev.Time)
	}

	if n.Store.Tip().ID != tipBefore {
		s.scheduleNextMining(n, ev.Time)
	}

	if n.IsAdversary() && b.Creator != n.ID {
		for _, released := range n.HandleHonestBlock(b, outcome) {
			s.gossipBlock(n, released, ev.Time, n.ID, false)
		}
	}
}

// resolveOrphans recursively accepts any parked blocks waiting on root (or
// on a descendant resolved in the process), gossiping each one as it
// lands.
func (s *Simulator) resolveOrphans(n *node.Node, root *ledger.Block, now float64) {
	queue := []*ledger.Block{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		child, ok := n.TakeOrphanChild(cur.ID)
		if !ok {
			continue
		}
		outcome, err := n.AcceptBlock(child)
		if err != nil {
			s.log.Debugf("node %d: orphan %s failed verification on resolve: %v", n.ID, child.ID, err)
			continue
		}
		if outcome == node.Accepted || outcome == node.Promoted {
			s.gossipBlock(n, child, now, n.ID, false)
			queue = append(queue, child)
		}
	}
}

// scheduleNextMining builds a fresh candidate on n's current tip and
// schedules its END_MINING at a time drawn from Exp(iat_block / hashPower).
func (s *Simulator) scheduleNextMining(n *node.Node, now float64) {
	candidate := n.BuildCandidate(s.cfg.MaxBlockLength)
	dt := s.rng.ExpFloat64() * (s.cfg.InterArrivalTimeBlock / n.HashPower)
	s.queue.Add(&scheduler.Event{
		Time:   round4(now + dt),
		Kind:   scheduler.EndMining,
		NodeID: n.ID,
		Extra:  candidate,
	})
}
