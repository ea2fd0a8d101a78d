// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func classifiedEngine(t *testing.T, g *Graph, epsA, epsB int32, mu int) *Engine {
	t.Helper()
	e := newEngineForPhaseTest(t, g, epsA, epsB, mu)
	require.NoError(t, e.checkCoreFirstPass(context.Background()))
	require.NoError(t, e.checkCoreSecondPass(context.Background()))
	return e
}

func TestBuildCoreList_AscendingAndExact(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}}
	g, _ := buildGraph(t, 6, edges)
	e := classifiedEngine(t, g, 1, 2, 2)

	e.buildCoreList()
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, e.cores)
}

func TestClusterCores_TwoTrianglesStayDisjoint(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}}
	g, _ := buildGraph(t, 6, edges)
	e := classifiedEngine(t, g, 1, 2, 2)

	e.clusterCores()

	require.True(t, e.sets.sameSet(0, 1))
	require.True(t, e.sets.sameSet(1, 2))
	require.True(t, e.sets.sameSet(3, 4))
	require.True(t, e.sets.sameSet(4, 5))
	require.False(t, e.sets.sameSet(0, 3))
}

// TestClusterCores_BowtieSharedVertexJoinsBothTriangles checks that a core
// vertex shared by two triangles ends up in the same component as every
// core in both of them.
func TestClusterCores_BowtieSharedVertexJoinsBothTriangles(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {3, 4}, {2, 4}}
	g, adj := buildGraph(t, 5, edges)
	e := classifiedEngine(t, g, 1, 2, 3)
	e.clusterCores()

	want := bruteRun(5, adj, 1, 2, 3)
	for u := 0; u < 5; u++ {
		for v := u + 1; v < 5; v++ {
			if want.isCore[u] && want.isCore[v] && want.clusterID[u] == want.clusterID[v] {
				require.Truef(t, e.sets.sameSet(u, v), "expected %d and %d in the same component", u, v)
			}
		}
	}
}
