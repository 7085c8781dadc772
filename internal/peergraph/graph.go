// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package peergraph builds the random, degree-bounded peer topology the
// simulator runs over, and verifies it is connected before handing it
// back.
package peergraph

import (
	"math/rand"

	"github.com/pkg/errors"
)

// ErrDisconnected is returned when graph construction exhausts its retry
// budget without producing a connected topology.
var ErrDisconnected = errors.New("peer graph failed to connect within retry budget")

// Link is a directed peer reference with its propagation delay, rounded to
// four decimal places at creation.
type Link struct {
	Peer  int
	Delay float64
}

// Graph is the adjacency list of every node's outbound peers.
type Graph struct {
	Peers [][]Link
}

// degreeOf draws a node's target degree: uniform in [4,8] for every node
// except the one at adversaryIdx (if >= 0), whose degree is fixed by the
// caller.
func degreeOf(rng *rand.Rand, idx, adversaryIdx, adversaryDegree int) int {
	if idx == adversaryIdx {
		return adversaryDegree
	}
	return 4 + rng.Intn(5)
}

// Build constructs a connected peer graph over numNodes nodes. adversaryIdx
// is -1 when there is no adversary; otherwise adversaryDegree fixes that
// node's degree to floor(adv_connected*numNodes). Retries the whole
// construction (up to maxRetries times) when the result is disconnected.
func Build(rng *rand.Rand, numNodes, adversaryIdx, adversaryDegree, maxRetries int) (*Graph, error) {
	degree := make([]int, numNodes)
	for i := range degree {
		degree[i] = degreeOf(rng, i, adversaryIdx, adversaryDegree)
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		g := &Graph{Peers: make([][]Link, numNodes)}

		for i := 0; i < numNodes; i++ {
			order := rng.Perm(numNodes)
			for _, j := range order {
				if len(g.Peers[i]) >= degree[i] {
					break
				}
				if j == i || len(g.Peers[j]) >= degree[j] || hasPeer(g, i, j) {
					continue
				}
				delay := round4(0.01 + rng.Float64()*0.49)
				g.Peers[i] = append(g.Peers[i], Link{Peer: j, Delay: delay})
				g.Peers[j] = append(g.Peers[j], Link{Peer: i, Delay: delay})
			}
		}

		if isConnected(g, numNodes) {
			return g, nil
		}
	}

	return nil, ErrDisconnected
}

func hasPeer(g *Graph, i, j int) bool {
	for _, l := range g.Peers[i] {
		if l.Peer == j {
			return true
		}
	}
	return false
}

func round4(v float64) float64 {
	return float64(int(v*10000+0.5)) / 10000
}

// isConnected performs a breadth-first walk from node 0 and reports
// whether every node is reachable.
func isConnected(g *Graph, numNodes int) bool {
	visited := make([]bool, numNodes)
	queue := []int{0}
	visited[0] = true
	count := 1
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, l := range g.Peers[n] {
			if !visited[l.Peer] {
				visited[l.Peer] = true
				count++
				queue = append(queue, l.Peer)
			}
		}
	}
	return count == numNodes
}
