// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pscan

// VertexLabel is the downstream-facing classification: every vertex is
// exactly one of these once Run has completed.
type VertexLabel int

const (
	// Outlier is neither a core, nor DIRECT (eps-similar) to any core.
	Outlier VertexLabel = iota
	// Member is a non-core DIRECT to cores of exactly one cluster.
	Member
	// Hub is a non-core DIRECT to cores of two or more distinct clusters.
	Hub
	// Core is a vertex classified as core; ClusterID is always valid.
	Core
)

func (l VertexLabel) String() string {
	switch l {
	case Outlier:
		return "OUTLIER"
	case Member:
		return "MEMBER"
	case Hub:
		return "HUB"
	case Core:
		return "CORE"
	default:
		return "UNKNOWN"
	}
}

// Labelling derives, once from Assignments(), the VertexLabel and (for
// Core/Member) the ClusterID for every vertex. Building it is
// O(n + len(assignments)); callers that only need a handful of vertices
// can call this once after Run and then look up Label(v) and
// ClusterID(v) cheaply.
type Labelling struct {
	label     []VertexLabel
	clusterID []int // valid for Core and Member only
}

// NewLabelling derives the labelling from a completed Engine. Calling it
// before Run has completed yields undefined results.
func NewLabelling(e *Engine) *Labelling {
	n := e.graph.N()
	l := &Labelling{
		label:     make([]VertexLabel, n),
		clusterID: make([]int, n),
	}

	memberClusters := make([]map[int]struct{}, n)
	for _, a := range e.assignments {
		if memberClusters[a.Vertex] == nil {
			memberClusters[a.Vertex] = make(map[int]struct{}, 1)
		}
		memberClusters[a.Vertex][a.ClusterID] = struct{}{}
	}

	for v := 0; v < n; v++ {
		switch {
		case e.IsCore(v):
			l.label[v] = Core
			l.clusterID[v] = e.ClusterOf(v)
		case len(memberClusters[v]) >= 2:
			l.label[v] = Hub
		case len(memberClusters[v]) == 1:
			l.label[v] = Member
			for cid := range memberClusters[v] {
				l.clusterID[v] = cid
			}
		default:
			l.label[v] = Outlier
		}
	}

	return l
}

// Label returns v's VertexLabel.
func (l *Labelling) Label(v int) VertexLabel {
	return l.label[v]
}

// ClusterID returns v's cluster id. It is only meaningful when
// Label(v) is Core or Member.
func (l *Labelling) ClusterID(v int) int {
	return l.clusterID[v]
}
