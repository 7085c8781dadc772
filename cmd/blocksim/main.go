// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command blocksim runs a single discrete-event simulation of a
// proof-of-work P2P network and reports, per node, the final tip position
// and the number of blocks in its local block tree.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daglabs/blocksim/internal/logx"
	"github.com/daglabs/blocksim/internal/simulator"
	flags "github.com/jessevdk/go-flags"
)

func main() {
	if err := run(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "blocksim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, simCfg, err := parseConfig()
	if err != nil {
		return err
	}

	if err := logx.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}
	if !cfg.NoLogFile {
		if err := logx.InitLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
			return err
		}
	}

	log := logx.Get(logx.SubsystemTags.SIM)
	log.Infof("starting simulation: %d nodes, attack_type=%d, seed=%d", simCfg.NumNodes, simCfg.AttackType, simCfg.Seed)

	sim, err := simulator.New(simCfg)
	if err != nil {
		return err
	}

	sim.Run()

	report(sim)
	return nil
}

// report prints, for each node, its final tip depth and block count, the
// minimal summary of a node's local view of the block tree. A fuller
// chain-inclusion-ratio report can be built on top of
// Simulator.Blocks/Tip.
func report(sim *simulator.Simulator) {
	log := logx.Get(logx.SubsystemTags.SIM)
	for id := 0; id < sim.NumNodes(); id++ {
		tip := sim.Tip(id)
		log.Infof("node %d: tip position=%d blocks-known=%d", id, tip.Position, len(sim.Blocks(id)))
	}
}
