// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

// clusterCores runs two single-threaded phases: phase one unions every
// pair of cores already confirmed DIRECT; phase two only then resolves
// the remaining Bound edges between cores, so any pair phase one already
// unioned skips its oracle call entirely.
func (e *Engine) clusterCores() {
	e.buildCoreList()

	for _, u := range e.cores {
		lo, hi := e.graph.EdgeRange(u)
		for idx := lo; idx < hi; idx++ {
			v := e.graph.Neighbor(idx)
			if u >= v || !e.classes.core(v) || e.sets.sameSet(u, v) {
				continue
			}
			if e.edges.isDirect(idx) {
				e.sets.union(u, v)
			}
		}
	}

	for _, u := range e.cores {
		lo, hi := e.graph.EdgeRange(u)
		for idx := lo; idx < hi; idx++ {
			v := e.graph.Neighbor(idx)
			if u >= v || !e.classes.core(v) || e.sets.sameSet(u, v) {
				continue
			}
			if e.edges.isBound(idx) {
				k := boundK(e.edges.load(idx))
				direct := e.graph.eval(u, v, k)
				// One-sided write: no later reader depends on the
				// symmetric index from this point on.
				e.edges.setTerminal(idx, direct)
				if direct {
					e.sets.union(u, v)
				}
			}
		}
	}
}

// buildCoreList fills e.cores in ascending vertex id order. It is built
// once and reused by both the core clusterer and the non-core assigner.
func (e *Engine) buildCoreList() {
	e.cores = e.cores[:0]
	for v := 0; v < e.graph.N(); v++ {
		if e.classes.core(v) {
			e.cores = append(e.cores, v)
		}
	}
}
