// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import "context"

// classification holds the two terminal boolean arrays a vertex can land
// in. At most one of isCore[v], isNonCore[v] is ever true; a vertex left
// with both false after both checker passes is treated as non-core.
type classification struct {
	isCore    []bool
	isNonCore []bool
}

func newClassification(n int) *classification {
	return &classification{
		isCore:    make([]bool, n),
		isNonCore: make([]bool, n),
	}
}

func (c *classification) core(v int) bool {
	return c.isCore[v]
}

// checkCoreFirstPass visits every vertex once: it first consumes
// already-terminal out-edges without calling the oracle, then - only when
// u <= v, to avoid both endpoints redundantly evaluating the same pair -
// invokes the oracle on remaining Bound edges and writes the verdict
// symmetrically.
func (e *Engine) checkCoreFirstPass(ctx context.Context) error {
	return e.runBatches(ctx, e.graph.N(), e.cfg.CheckFirstBatch, func(start, end int) error {
		for u := start; u < end; u++ {
			e.checkCoreFirst(u)
		}
		return nil
	})
}

func (e *Engine) checkCoreFirst(u int) {
	mu := e.mu
	sd := 0
	ed := e.graph.Degree(u)
	lo, hi := e.graph.EdgeRange(u)

	if ed < mu-1 {
		e.classes.isNonCore[u] = true
		return
	}

	for idx := lo; idx < hi; idx++ {
		switch {
		case e.edges.isDirect(idx):
			sd++
			if sd >= mu-1 {
				e.classes.isCore[u] = true
				return
			}
		case e.edges.isNotDirect(idx):
			ed--
			if ed < mu-1 {
				e.classes.isNonCore[u] = true
				return
			}
		}
	}

	for idx := lo; idx < hi; idx++ {
		v := e.graph.Neighbor(idx)
		if u > v || !e.edges.isBound(idx) {
			continue
		}
		k := boundK(e.edges.load(idx))
		direct := e.graph.eval(u, v, k)
		e.edges.setTerminal(idx, direct)
		e.edges.setTerminal(e.graph.ReverseEdgeIndex(u, idx), direct)

		if direct {
			sd++
			if sd >= mu-1 {
				e.classes.isCore[u] = true
				return
			}
		} else {
			ed--
			if ed < mu-1 {
				e.classes.isNonCore[u] = true
				return
			}
		}
	}
}

// checkCoreSecondPass revisits only vertices the first pass left
// unclassified, and evaluates every remaining Bound edge regardless of
// u <= v - the first pass's asymmetric guard may have left Bound edges
// unevaluated from u's side when v's own pass-one evaluation terminated
// before reaching this edge.
func (e *Engine) checkCoreSecondPass(ctx context.Context) error {
	return e.runBatches(ctx, e.graph.N(), e.cfg.CheckSecondBatch, func(start, end int) error {
		for u := start; u < end; u++ {
			if e.classes.isCore[u] || e.classes.isNonCore[u] {
				continue
			}
			e.checkCoreSecond(u)
		}
		return nil
	})
}

func (e *Engine) checkCoreSecond(u int) {
	mu := e.mu
	sd := 0
	ed := e.graph.Degree(u)
	lo, hi := e.graph.EdgeRange(u)

	for idx := lo; idx < hi; idx++ {
		switch {
		case e.edges.isDirect(idx):
			sd++
			if sd >= mu-1 {
				e.classes.isCore[u] = true
				return
			}
		case e.edges.isNotDirect(idx):
			ed--
			if ed < mu-1 {
				return
			}
		}
	}

	for idx := lo; idx < hi; idx++ {
		if !e.edges.isBound(idx) {
			continue
		}
		v := e.graph.Neighbor(idx)
		k := boundK(e.edges.load(idx))
		direct := e.graph.eval(u, v, k)
		e.edges.setTerminal(idx, direct)
		e.edges.setTerminal(e.graph.ReverseEdgeIndex(u, idx), direct)

		if direct {
			sd++
			if sd >= mu-1 {
				e.classes.isCore[u] = true
				return
			}
		} else {
			ed--
			if ed < mu-1 {
				return
			}
		}
	}
}
