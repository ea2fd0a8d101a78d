// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

// finalize derives cluster ids: for every core v, in ascending vertex id
// order, clusterID[Find(v)] becomes the minimum core id seen so far in
// that root's component. The sentinel value is n, the vertex count: it
// can only remain on a non-root entry, or on a root whose component
// contains no core.
func (e *Engine) finalize() {
	n := e.graph.N()
	e.clusterID = make([]int, n)
	for i := range e.clusterID {
		e.clusterID[i] = n
	}

	for v := 0; v < n; v++ {
		if !e.classes.core(v) {
			continue
		}
		root := e.sets.find(v)
		if v < e.clusterID[root] {
			e.clusterID[root] = v
		}
	}
}

// ClusterOf returns the cluster identifier of core vertex v. The result
// is the sentinel (N()) if v is not a core.
func (e *Engine) ClusterOf(v int) int {
	if !e.classes.core(v) {
		return e.graph.N()
	}
	return e.clusterID[e.sets.find(v)]
}
