// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package simparams

import "testing"

func validConfig() Config {
	return Config{
		NumNodes:              10,
		SlowNodes:             0.1,
		LowHash:               0.5,
		InterArrivalTime:      10,
		InterArrivalTimeBlock: 600,
		SimulationTime:        36000,
		MaxBlockLength:        10,
		AttackType:            AttackNone,
		AdvHash:               0,
		AdvConnected:          0,
		Seed:                  1,
	}
}

func TestValidateAcceptsDefault(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("expected a valid config, got: %v", err)
	}
}

func TestValidateRejectsTooFewNodes(t *testing.T) {
	cfg := validConfig()
	cfg.NumNodes = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for num_nodes < 2")
	}
}

func TestValidateRejectsFractionOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.SlowNodes = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for slow_nodes outside [0,1]")
	}
}

func TestValidateRejectsAdvHashWithoutAttack(t *testing.T) {
	cfg := validConfig()
	cfg.AdvHash = 0.3
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for adv_hash != 0 with attack_type none")
	}
}

func TestValidateRejectsLowHashPlusAdvHashOverOne(t *testing.T) {
	cfg := validConfig()
	cfg.AttackType = AttackSelfish
	cfg.AdvHash = 0.6
	cfg.LowHash = 0.6
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error when low_hash + adv_hash > 1")
	}
}

func TestConfigSnapshotCopiesHashPower(t *testing.T) {
	cfg := validConfig()
	hashPower := []float64{0.1, 0.2, 0.3}

	snap := cfg.Snapshot(hashPower, 2, 1)
	if snap.Config != cfg {
		t.Errorf("Snapshot().Config = %+v, want %+v", snap.Config, cfg)
	}
	if snap.NumSlowNodes != 2 || snap.NumLowHash != 1 {
		t.Errorf("Snapshot() counts = (%d, %d), want (2, 1)", snap.NumSlowNodes, snap.NumLowHash)
	}

	hashPower[0] = 0.9
	if snap.HashPower[0] == 0.9 {
		t.Error("Snapshot() must copy the hash power schedule, not alias it")
	}
}

func TestHasAdversary(t *testing.T) {
	cfg := validConfig()
	if cfg.HasAdversary() {
		t.Error("attack_type none should report no adversary")
	}
	cfg.AttackType = AttackStubborn
	cfg.AdvHash = 0.2
	if !cfg.HasAdversary() {
		t.Error("attack_type stubborn should report an adversary")
	}
}
