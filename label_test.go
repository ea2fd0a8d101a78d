// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVertexLabel_String(t *testing.T) {
	require.Equal(t, "OUTLIER", Outlier.String())
	require.Equal(t, "MEMBER", Member.String())
	require.Equal(t, "HUB", Hub.String())
	require.Equal(t, "CORE", Core.String())
}

func TestLabelling_CoreAndMemberAndOutlier(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}, {0, 3}}
	g, _ := buildGraph(t, 5, edges) // vertex 4 isolated -> outlier, 3 -> member
	// mu=3: pendant 3 has a single DIRECT edge, one short of core.
	e, err := NewEngine(g, 1, 2, 3, DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, e.Run(context.Background()))

	require.Equal(t, Core, e.Label(0))
	require.Equal(t, Member, e.Label(3))
	require.Equal(t, Outlier, e.Label(4))
}

// TestLabelling_HubWhenAdjacentToTwoClusters checks a non-core vertex
// DIRECT-adjacent to cores of two distinct clusters is labelled Hub, not
// Member, and that Engine.Label caches and reuses a single Labelling.
func TestLabelling_HubWhenAdjacentToTwoClusters(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}, {0, 6}, {3, 6}}
	g, _ := buildGraph(t, 7, edges)
	// mu=4: only the degree-3 vertices 0 and 3 can be core, so vertex 6
	// (DIRECT to both) stays non-core and 0, 3 form two clusters.
	e, err := NewEngine(g, 1, 2, 4, DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, e.Run(context.Background()))

	require.Equal(t, Hub, e.Label(6))
	first := e.labels
	e.Label(1)
	require.Same(t, first, e.labels)
}
