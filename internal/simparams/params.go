// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package simparams validates and normalizes the simulator's configuration
// input.
package simparams

import "github.com/pkg/errors"

// AttackType identifies the adversary's release policy.
type AttackType int

// The three supported attack types.
const (
	AttackNone AttackType = iota
	AttackSelfish
	AttackStubborn
)

// ErrInvalidConfig is the sentinel wrapped by every configuration
// rejection reason.
var ErrInvalidConfig = errors.New("invalid simulation configuration")

// Config is the fully resolved, validated simulation configuration.
type Config struct {
	NumNodes              int
	SlowNodes             float64
	LowHash               float64
	InterArrivalTime      float64
	InterArrivalTimeBlock float64
	SimulationTime        float64
	MaxBlockLength        int
	AttackType            AttackType
	AdvHash               float64
	AdvConnected          float64
	Seed                  int64
}

// Validate rejects invalid configurations: negative fractions,
// num_nodes < 2, and hash fractions summing past 1.
func (c Config) Validate() error {
	if c.NumNodes < 2 {
		return errors.Wrapf(ErrInvalidConfig, "num_nodes must be >= 2, got %d", c.NumNodes)
	}
	if err := fraction("slow_nodes", c.SlowNodes); err != nil {
		return err
	}
	if err := fraction("low_hash", c.LowHash); err != nil {
		return err
	}
	if c.InterArrivalTime <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "inter_arrival_time must be positive, got %f", c.InterArrivalTime)
	}
	if c.InterArrivalTimeBlock <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "inter_arrival_time_block must be positive, got %f", c.InterArrivalTimeBlock)
	}
	if c.SimulationTime <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "simulation_time must be positive, got %f", c.SimulationTime)
	}
	if c.MaxBlockLength < 1 {
		return errors.Wrapf(ErrInvalidConfig, "MAX_BLOCK_LENGTH must be >= 1, got %d", c.MaxBlockLength)
	}
	if c.AttackType != AttackNone && c.AttackType != AttackSelfish && c.AttackType != AttackStubborn {
		return errors.Wrapf(ErrInvalidConfig, "attack_type must be 0, 1 or 2, got %d", c.AttackType)
	}
	if err := fraction("adv_hash", c.AdvHash); err != nil {
		return err
	}
	if err := fraction("adv_connected", c.AdvConnected); err != nil {
		return err
	}
	if c.AttackType == AttackNone && c.AdvHash != 0 {
		return errors.Wrap(ErrInvalidConfig, "adv_hash must be 0 when attack_type is 0")
	}
	if c.LowHash+c.AdvHash > 1 {
		return errors.Wrapf(ErrInvalidConfig, "low_hash (%f) + adv_hash (%f) exceeds 1", c.LowHash, c.AdvHash)
	}
	return nil
}

func fraction(name string, v float64) error {
	if v < 0 || v > 1 {
		return errors.Wrapf(ErrInvalidConfig, "%s must be in [0,1], got %f", name, v)
	}
	return nil
}

// HasAdversary reports whether the configuration includes an adversary
// node. The adversary, when present, is always node id 0.
func (c Config) HasAdversary() bool {
	return c.AttackType != AttackNone
}

// Snapshot is the fully resolved configuration together with the per-node
// values a Simulator derives from it at construction time: the slow/fast
// and low/high hash assignments, and the resulting hash-power schedule.
// It exists for reporting: a run can record what it actually resolved to
// without re-deriving it from the raw fractions and the RNG stream.
type Snapshot struct {
	Config       Config
	NumSlowNodes int
	NumLowHash   int
	HashPower    []float64
}

// Snapshot pairs c with the per-node hash-power schedule and slow/low-hash
// counts a Simulator resolved from it.
func (c Config) Snapshot(hashPower []float64, numSlowNodes, numLowHash int) Snapshot {
	schedule := make([]float64, len(hashPower))
	copy(schedule, hashPower)
	return Snapshot{
		Config:       c,
		NumSlowNodes: numSlowNodes,
		NumLowHash:   numLowHash,
		HashPower:    schedule,
	}
}
