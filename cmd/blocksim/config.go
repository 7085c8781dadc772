// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/daglabs/blocksim/internal/simparams"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const defaultLogFilename = "blocksim.log"

type config struct {
	NumNodes              int     `long:"num-nodes" description:"Number of simulated nodes" default:"10"`
	SlowNodes             float64 `long:"slow-nodes" description:"Fraction of bandwidth-slow nodes" default:"0.1"`
	LowHash               float64 `long:"low-hash" description:"Fraction of low-hash-power honest nodes" default:"0.5"`
	InterArrivalTime      float64 `long:"iat-txn" description:"Mean inter-arrival time between a node's transactions" default:"10"`
	InterArrivalTimeBlock float64 `long:"iat-block" description:"Mean inter-arrival time between a node's blocks" default:"600"`
	SimulationTime        float64 `long:"sim-time" description:"Total simulated time" default:"36000"`
	MaxBlockLength        int     `long:"max-block-length" description:"Max transactions + coinbase per block" default:"10"`
	AttackType            int     `long:"attack-type" description:"0=none, 1=selfish, 2=stubborn" default:"0"`
	AdvHash               float64 `long:"adv-hash" description:"Adversary's hashing power" default:"0"`
	AdvConnected          float64 `long:"adv-connected" description:"Adversary's peer degree as a fraction of num-nodes" default:"0"`
	Seed                  int64   `long:"seed" description:"PRNG seed; 0 picks a fixed default for reproducibility" default:"1"`

	DebugLevel string `long:"debuglevel" description:"Logging level: either a single level (trace, debug, info, warn, error) applied to every subsystem, or a comma-separated SUBSYS=level list" default:"info"`
	LogDir     string `long:"logdir" description:"Directory to log output to"`
	NoLogFile  bool   `long:"nologfile" description:"Disable logging to a file"`
}

func defaultHomeDir() string {
	return filepath.Join(".", "blocksim-data")
}

// parseConfig parses command-line flags into a config and converts it to a
// validated simparams.Config.
func parseConfig() (*config, simparams.Config, error) {
	cfg := &config{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	if _, err := parser.Parse(); err != nil {
		return nil, simparams.Config{}, err
	}

	if cfg.LogDir == "" {
		cfg.LogDir = defaultHomeDir()
	}

	simCfg := simparams.Config{
		NumNodes:              cfg.NumNodes,
		SlowNodes:             cfg.SlowNodes,
		LowHash:               cfg.LowHash,
		InterArrivalTime:      cfg.InterArrivalTime,
		InterArrivalTimeBlock: cfg.InterArrivalTimeBlock,
		SimulationTime:        cfg.SimulationTime,
		MaxBlockLength:        cfg.MaxBlockLength,
		AttackType:            simparams.AttackType(cfg.AttackType),
		AdvHash:               cfg.AdvHash,
		AdvConnected:          cfg.AdvConnected,
		Seed:                  cfg.Seed,
	}

	if err := simCfg.Validate(); err != nil {
		return nil, simparams.Config{}, errors.Wrap(err, "parsing configuration")
	}

	return cfg, simCfg, nil
}
