// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import "context"

// prune initialises every directed edge's state from degree bounds alone,
// batched over vertex ranges. Each task writes disjoint edge indices, so
// no synchronization beyond the atomic store in edgeState is required
// even though (u,v) and (v,u) are computed independently by two different
// tasks.
func (e *Engine) prune(ctx context.Context) error {
	epsA2 := int64(e.epsA) * int64(e.epsA)
	epsB2 := int64(e.epsB) * int64(e.epsB)

	return e.runBatches(ctx, e.graph.N(), e.cfg.PruneBatch, func(start, end int) error {
		for u := start; u < end; u++ {
			duPrime := int32(e.graph.Degree(u) + 1)
			lo, hi := e.graph.EdgeRange(u)
			for idx := lo; idx < hi; idx++ {
				v := e.graph.Neighbor(idx)
				dvPrime := int32(e.graph.Degree(v) + 1)

				a, b := duPrime, dvPrime
				if a > b {
					a, b = b, a
				}
				if int64(a)*epsB2 < int64(b)*epsA2 {
					e.edges.setTerminal(idx, false)
					continue
				}

				k := lowerBound(duPrime, dvPrime, e.epsA, e.epsB)
				if k <= 2 {
					e.edges.setTerminal(idx, true)
				} else {
					e.edges.setBound(idx, k)
				}
			}
		}
		return nil
	})
}
