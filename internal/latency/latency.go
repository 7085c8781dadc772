// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package latency implements the per-message delivery delay model used to
// schedule gossip arrivals between peers.
package latency

import "math/rand"

// slowBandwidthMbps and fastBandwidthMbps are the effective link
// bandwidths: 5 Mb/s if either endpoint is slow, else 100 Mb/s.
const (
	slowBandwidthMbps = 5
	fastBandwidthMbps = 100
)

// Bandwidth returns the effective bandwidth, in megabits per second, of a
// link touching two nodes with the given slow flags.
func Bandwidth(slowU, slowV bool) float64 {
	if slowU || slowV {
		return slowBandwidthMbps
	}
	return fastBandwidthMbps
}

// Compute returns the delivery latency for a message of size
// messageSizeMb (megabits) across a link with the given propagation delay
// and effective bandwidth:
//
//	latency = propagation + messageSizeMb/bandwidth + Exp(0.096/bandwidth)
//
// The result is rounded to 4 decimal places for reproducibility.
func Compute(rng *rand.Rand, propagation, messageSizeMb, bandwidth float64) float64 {
	queuing := rng.ExpFloat64() * (0.096 / bandwidth)
	return round4(propagation + messageSizeMb/bandwidth + queuing)
}

func round4(v float64) float64 {
	return float64(int64(v*10000+0.5)) / 10000
}
