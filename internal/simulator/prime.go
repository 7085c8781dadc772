// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package simulator

import "github.com/daglabs/blocksim/internal/scheduler"

// primeEvents schedules each node's first CREATE_TXN and its first
// START_MINING, bootstrapping the event queue before Run begins draining
// it. START_MINING events are staggered with a small jitter so every
// node's first candidate isn't built at exactly t=0.
func (s *Simulator) primeEvents() {
	for _, n := range s.nodes {
		createAt := round4(s.rng.ExpFloat64() * s.cfg.InterArrivalTime)
		s.queue.Add(&scheduler.Event{
			Time:   createAt,
			Kind:   scheduler.CreateTxn,
			NodeID: n.ID,
		})

		startAt := round4(s.rng.ExpFloat64() * s.cfg.InterArrivalTimeBlock / 2)
		s.queue.Add(&scheduler.Event{
			Time:   startAt,
			Kind:   scheduler.StartMining,
			NodeID: n.ID,
		})
	}
}
