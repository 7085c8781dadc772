// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package simulator wires peergraph, node, and scheduler together into a
// runnable discrete-event simulation: it owns genesis and account
// seeding, hash-power and topology assignment, event priming, and the
// dispatch loop itself.
package simulator

import (
	"math/rand"

	"github.com/daglabs/blocksim/internal/chainutil"
	"github.com/daglabs/blocksim/internal/ledger"
	"github.com/daglabs/blocksim/internal/logx"
	"github.com/daglabs/blocksim/internal/node"
	"github.com/daglabs/blocksim/internal/peergraph"
	"github.com/daglabs/blocksim/internal/scheduler"
	"github.com/daglabs/blocksim/internal/simparams"
	"github.com/sirupsen/logrus"
)

// maxGraphRetries bounds peergraph.Build's connectivity retry loop.
const maxGraphRetries = 50

// transactionMessageSizeMb is the 8 Kb wire size of a single gossiped
// transaction.
const transactionMessageSizeMb = 0.008

// Simulator runs one parameterized simulation to completion.
type Simulator struct {
	cfg     simparams.Config
	rng     *rand.Rand
	nodes   []*node.Node
	genesis *ledger.Block
	queue   *scheduler.Queue
	log     *logrus.Entry

	currentTime  float64
	nextReportAt float64

	numSlowNodes int
	numLowHash   int
}

// New validates cfg and builds a Simulator ready to Run: genesis block,
// account seeding, hash-power and slow/low-hash assignment, and a connected
// peer graph.
func New(cfg simparams.Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	genesis := ledger.NewGenesis(rng, cfg.NumNodes)

	adversaryIdx := -1
	adversaryDegree := 0
	if cfg.HasAdversary() {
		adversaryIdx = 0
		adversaryDegree = int(cfg.AdvConnected * float64(cfg.NumNodes))
	}

	graph, err := peergraph.Build(rng, cfg.NumNodes, adversaryIdx, adversaryDegree, maxGraphRetries)
	if err != nil {
		return nil, err
	}

	honestStart := 0
	honestCount := cfg.NumNodes
	if cfg.HasAdversary() {
		honestStart = 1
		honestCount--
	}
	numLowHash := int(float64(cfg.NumNodes) * cfg.LowHash)
	if numLowHash > honestCount {
		numLowHash = honestCount
	}
	numSlow := int(float64(cfg.NumNodes) * cfg.SlowNodes)

	lowHashSet := sampleFromRange(rng, honestStart, cfg.NumNodes, numLowHash)
	slowSet := sampleFromRange(rng, honestStart, cfg.NumNodes, numSlow)

	// Base honest hash power, scaled so that low-hash nodes get basePower
	// and the rest get 10x that, summing (with the adversary's share) to
	// 1. The denominator is derived from the actual honest node count
	// rather than a fixed numNodes-1, so the total stays normalized to 1
	// whether or not an adversary is present (see DESIGN.md).
	denom := 10*float64(honestCount) - 9*float64(numLowHash)
	basePower := (1 - cfg.AdvHash) / denom

	nodes := make([]*node.Node, cfg.NumNodes)
	for i := 0; i < cfg.NumNodes; i++ {
		var label node.Label
		var hashPower float64
		if cfg.HasAdversary() && i == 0 {
			label = adversaryLabel(cfg.AttackType)
			hashPower = cfg.AdvHash
		} else {
			label = node.Honest
			if lowHashSet[i] {
				hashPower = basePower
			} else {
				hashPower = basePower * 10
			}
		}
		nodes[i] = node.New(i, slowSet[i], hashPower, label, genesis)
	}

	for i, links := range graph.Peers {
		for _, l := range links {
			nodes[i].AddPeer(l.Peer, l.Delay)
		}
	}

	return &Simulator{
		cfg:          cfg,
		rng:          rng,
		nodes:        nodes,
		genesis:      genesis,
		queue:        scheduler.NewQueue(),
		log:          logx.Get(logx.SubsystemTags.SIM),
		nextReportAt: cfg.SimulationTime / 20,
		numSlowNodes: numSlow,
		numLowHash:   numLowHash,
	}, nil
}

func adversaryLabel(at simparams.AttackType) node.Label {
	switch at {
	case simparams.AttackSelfish:
		return node.Selfish
	case simparams.AttackStubborn:
		return node.Stubborn
	default:
		return node.Honest
	}
}

// sampleFromRange draws count distinct indices from [lo, hi) without
// replacement and returns them as a membership set.
func sampleFromRange(rng *rand.Rand, lo, hi, count int) map[int]bool {
	set := make(map[int]bool, count)
	if count <= 0 || hi <= lo {
		return set
	}
	span := hi - lo
	if count > span {
		count = span
	}
	for i, idx := range rng.Perm(span)[:count] {
		_ = i
		set[lo+idx] = true
	}
	return set
}

func round4(v float64) float64 {
	return float64(int64(v*10000+0.5)) / 10000
}

// Blocks returns the final block tree for the node with the given id,
// keyed by id, for a report generator to walk when computing per-miner
// chain-inclusion ratios.
func (s *Simulator) Blocks(nodeID int) map[chainutil.ID]*ledger.Block {
	return s.nodes[nodeID].Store.Blocks()
}

// Tip returns the node with the given id's current tip.
func (s *Simulator) Tip(nodeID int) *ledger.Block {
	return s.nodes[nodeID].Store.Tip()
}

// PeerGraph returns each node's outbound peer links, for visualization or
// connectivity reporting.
func (s *Simulator) PeerGraph() [][]peergraph.Link {
	out := make([][]peergraph.Link, len(s.nodes))
	for i, n := range s.nodes {
		out[i] = n.Peers
	}
	return out
}

// NumNodes returns the number of simulated nodes.
func (s *Simulator) NumNodes() int {
	return len(s.nodes)
}

// Snapshot returns the resolved configuration together with the per-node
// hash-power schedule and slow/low-hash counts New derived from it, for a
// caller that wants to record what a run actually resolved to.
func (s *Simulator) Snapshot() simparams.Snapshot {
	hashPower := make([]float64, len(s.nodes))
	for i, n := range s.nodes {
		hashPower[i] = n.HashPower
	}
	return s.cfg.Snapshot(hashPower, s.numSlowNodes, s.numLowHash)
}
