// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import "context"

// Assignment is a (ClusterID, Vertex) pair emitted for a non-core vertex
// that is DIRECT-adjacent to a core. The same pair may be emitted more
// than once when a non-core is adjacent to multiple cores of the same
// cluster; deduplication is left to downstream consumers.
type Assignment struct {
	ClusterID int
	Vertex    int
}

// evalNonCoreEdges is the parallel eval stage: for every core u and every
// out-edge to a non-core v still in Bound state, resolve it. Only the
// (u,v) orientation is written - v is not a core and will never be
// revisited from its own side, so symmetric coherence is unnecessary here
// (unlike the core-checker passes).
func (e *Engine) evalNonCoreEdges(ctx context.Context) error {
	return e.runBatches(ctx, len(e.cores), e.cfg.NonCoreEvalBatch, func(start, end int) error {
		for i := start; i < end; i++ {
			u := e.cores[i]
			lo, hi := e.graph.EdgeRange(u)
			for idx := lo; idx < hi; idx++ {
				v := e.graph.Neighbor(idx)
				if e.classes.core(v) || !e.edges.isBound(idx) {
					continue
				}
				k := boundK(e.edges.load(idx))
				e.edges.setTerminal(idx, e.graph.eval(u, v, k))
			}
		}
		return nil
	})
}

// emitNonCoreAssignments is the serial emit stage, run after finalize so
// cluster ids are available. Cores are visited in ascending id order
// (e.cores is already sorted), giving reproducible (if not deduplicated)
// output ordering.
func (e *Engine) emitNonCoreAssignments() {
	e.assignments = e.assignments[:0]
	for _, u := range e.cores {
		cid := e.clusterID[e.sets.find(u)]
		lo, hi := e.graph.EdgeRange(u)
		for idx := lo; idx < hi; idx++ {
			v := e.graph.Neighbor(idx)
			if e.classes.core(v) || !e.edges.isDirect(idx) {
				continue
			}
			e.assignments = append(e.assignments, Assignment{ClusterID: cid, Vertex: v})
		}
	}
}
