// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package logx provides the per-subsystem loggers used across the
// simulator: a fixed set of named subsystems, all backed by one shared
// writer, with debug-level parsing compatible with a
// "SUBSYS=level,SUBSYS=level" --debuglevel flag.
package logx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jrick/logrotate/rotator"
	"github.com/sirupsen/logrus"
)

// SubsystemTags enumerates the logging subsystems of the simulator.
var SubsystemTags = struct {
	SIM,
	SCHD,
	NODE,
	CHST,
	MMPL,
	ADVR string
}{
	SIM:  "SIM",
	SCHD: "SCHD",
	NODE: "NODE",
	CHST: "CHST",
	MMPL: "MMPL",
	ADVR: "ADVR",
}

var (
	backend          = logrus.New()
	logRotator       *rotator.Rotator
	initiated        bool
	subsystemLoggers = make(map[string]*logrus.Entry)
)

func init() {
	backend.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.0000",
	})
	backend.SetOutput(os.Stdout)
	backend.SetLevel(logrus.InfoLevel)

	for _, tag := range []string{
		SubsystemTags.SIM, SubsystemTags.SCHD, SubsystemTags.NODE,
		SubsystemTags.CHST, SubsystemTags.MMPL, SubsystemTags.ADVR,
	} {
		subsystemLoggers[tag] = backend.WithField("subsys", tag)
	}
}

// rotatingWriter forwards log output to the rotator once it is initialized;
// InitLogRotator pairs it with stdout in a MultiWriter.
type rotatingWriter struct{}

func (rotatingWriter) Write(p []byte) (int, error) {
	if initiated && logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// InitLogRotator initializes the on-disk log rotator and fans the backend's
// output to both stdout and the rotated file. It must be called before
// logging from the simulator is useful beyond stdout.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r
	initiated = true
	backend.SetOutput(io.MultiWriter(os.Stdout, rotatingWriter{}))
	return nil
}

// Get returns the logger for the named subsystem. Unknown tags return the
// SIM logger so callers never need a nil check.
func Get(tag string) *logrus.Entry {
	if logger, ok := subsystemLoggers[tag]; ok {
		return logger
	}
	return subsystemLoggers[SubsystemTags.SIM]
}

// SetLogLevel sets the logging level on behalf of the named subsystem.
// Every subsystem writes through the one shared backend, so the level
// applies to all subsystems, not only the named one. Invalid subsystems are
// ignored; an unparsable level falls back to info.
func SetLogLevel(subsystemID, logLevel string) {
	if _, ok := subsystemLoggers[subsystemID]; !ok {
		return
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	backend.SetLevel(level)
}

// SetLogLevels sets every subsystem's level to logLevel.
func SetLogLevels(logLevel string) {
	for subsysID := range subsystemLoggers {
		SetLogLevel(subsysID, logLevel)
	}
}

// ParseAndSetDebugLevels parses a "level" or "SUBSYS=level,SUBSYS=level"
// specification and applies it. Since all subsystems share one backend
// level, the last pair of a per-subsystem list sets the level for every
// subsystem.
func ParseAndSetDebugLevels(debugLevel string) error {
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if _, err := logrus.ParseLevel(debugLevel); err != nil {
			return fmt.Errorf("the specified debug level [%s] is invalid", debugLevel)
		}
		SetLogLevels(debugLevel)
		return nil
	}

	for _, pair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(pair, "=") {
			return fmt.Errorf("the specified debug level contains an invalid subsystem/level pair [%s]", pair)
		}
		fields := strings.SplitN(pair, "=", 2)
		subsysID, level := fields[0], fields[1]
		if _, ok := subsystemLoggers[subsysID]; !ok {
			return fmt.Errorf("the specified subsystem [%s] is invalid -- supported subsystems %s",
				subsysID, strings.Join(SupportedSubsystems(), ", "))
		}
		if _, err := logrus.ParseLevel(level); err != nil {
			return fmt.Errorf("the specified debug level [%s] is invalid", level)
		}
		SetLogLevel(subsysID, level)
	}
	return nil
}

// SupportedSubsystems returns a sorted slice of the supported subsystem
// tags.
func SupportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for tag := range subsystemLoggers {
		subsystems = append(subsystems, tag)
	}
	sort.Strings(subsystems)
	return subsystems
}
