// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinalize_ClusterIDIsMinimumCoreIDInComponent(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}}
	g, _ := buildGraph(t, 3, edges)
	e := classifiedEngine(t, g, 1, 2, 2)
	e.clusterCores()
	e.finalize()

	for v := 0; v < 3; v++ {
		require.Equal(t, 0, e.ClusterOf(v))
	}
}

func TestFinalize_NonCoreVertexGetsSentinel(t *testing.T) {
	edges := [][2]int{{0, 1}}
	g, _ := buildGraph(t, 3, edges) // vertex 2 isolated, never core
	e := classifiedEngine(t, g, 1, 2, 2)
	e.clusterCores()
	e.finalize()

	require.Equal(t, g.N(), e.ClusterOf(2))
}

func TestFinalize_DisjointComponentsGetDistinctIDs(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}}
	g, _ := buildGraph(t, 6, edges)
	e := classifiedEngine(t, g, 1, 2, 2)
	e.clusterCores()
	e.finalize()

	require.Equal(t, 0, e.ClusterOf(0))
	require.Equal(t, 3, e.ClusterOf(3))
	require.NotEqual(t, e.ClusterOf(0), e.ClusterOf(3))
}
