// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import "runtime"

// Default batch sizes per phase. The inner loop cost differs enough
// across phases (a prune task touches only degree counters, a core-check
// task may call the oracle) that one batch size does not fit all of them.
const (
	defaultPruneBatch        = 8192
	defaultCheckFirstBatch   = 32
	defaultCheckSecondBatch  = 64
	defaultNonCoreEvalBatch  = 64
)

// Config tunes the engine's thread pool and per-phase batch sizes. The
// zero value is not ready to use; call DefaultConfig and override fields
// as needed.
type Config struct {
	// Threads is the worker pool size for every parallel phase. Must be
	// >= 1.
	Threads int

	// PruneBatch is the number of vertices per pruning task.
	PruneBatch int

	// CheckFirstBatch is the number of vertices per first-pass
	// core-check task.
	CheckFirstBatch int

	// CheckSecondBatch is the number of vertices per second-pass
	// core-check task.
	CheckSecondBatch int

	// NonCoreEvalBatch is the number of cores per non-core evaluation
	// task.
	NonCoreEvalBatch int

	// Logger receives phase-boundary debug messages. Nil means discard.
	Logger Logger
}

// DefaultConfig returns a Config with thread count set to
// runtime.NumCPU() and the package's default per-phase batch sizes.
func DefaultConfig() Config {
	return Config{
		Threads:          runtime.NumCPU(),
		PruneBatch:       defaultPruneBatch,
		CheckFirstBatch:  defaultCheckFirstBatch,
		CheckSecondBatch: defaultCheckSecondBatch,
		NonCoreEvalBatch: defaultNonCoreEvalBatch,
		Logger:           noopLogger{},
	}
}

func (c *Config) logger() Logger {
	if c.Logger == nil {
		return noopLogger{}
	}
	return c.Logger
}

func (c Config) validate() error {
	if c.Threads < 1 {
		return wrapParamErr("NewEngine", ErrThreadCount)
	}
	return nil
}

func firstPositive(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
