package pscan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// triangleGraph builds the 0-1-2-0 triangle used across several tests.
func triangleGraph(t *testing.T) *Graph {
	t.Helper()
	offset := []int32{0, 2, 4, 6}
	adj := []int32{1, 2, 0, 2, 0, 1}
	g, err := NewGraph(3, offset, adj)
	require.NoError(t, err)
	return g
}

func TestNewGraph_Triangle(t *testing.T) {
	g := triangleGraph(t)
	require.Equal(t, 3, g.N())
	for v := 0; v < 3; v++ {
		require.Equal(t, 2, g.Degree(v))
	}
}

func TestNewGraph_RejectsBadOffsetLength(t *testing.T) {
	_, err := NewGraph(3, []int32{0, 1}, []int32{1})
	require.Error(t, err)
	var ee *EngineError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, InvalidGraph, ee.Kind)
}

func TestNewGraph_RejectsNonMonotonicOffset(t *testing.T) {
	_, err := NewGraph(2, []int32{0, 3, 1}, []int32{1, 1, 1})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrOffsetMonotonicity)
}

func TestNewGraph_RejectsSelfLoop(t *testing.T) {
	offset := []int32{0, 1, 1}
	adj := []int32{0}
	_, err := NewGraph(2, offset, adj)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrSelfLoop)
}

func TestNewGraph_RejectsUnsortedNeighbours(t *testing.T) {
	offset := []int32{0, 2, 3, 3}
	adj := []int32{2, 1, 0}
	_, err := NewGraph(3, offset, adj)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsorted)
}

func TestNewGraph_RejectsAsymmetricAdjacency(t *testing.T) {
	// 0 -> 1 but 1 has no edge back to 0.
	offset := []int32{0, 1, 1}
	adj := []int32{1}
	_, err := NewGraph(2, offset, adj)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotSymmetric)
}

func TestGraph_ReverseEdgeIndex(t *testing.T) {
	g := triangleGraph(t)
	lo, hi := g.EdgeRange(0)
	for idx := lo; idx < hi; idx++ {
		v := g.Neighbor(idx)
		rev := g.ReverseEdgeIndex(0, idx)
		require.Equal(t, 0, g.Neighbor(rev))
		// And the reverse of the reverse lands back on idx.
		require.Equal(t, idx, g.ReverseEdgeIndex(v, rev))
	}
}

func TestGraph_IsolatedVertex(t *testing.T) {
	// Vertex 2 has no edges; 0-1 are connected.
	offset := []int32{0, 1, 2, 2}
	adj := []int32{1, 0}
	g, err := NewGraph(3, offset, adj)
	require.NoError(t, err)
	require.Equal(t, 0, g.Degree(2))
	lo, hi := g.EdgeRange(2)
	require.Equal(t, lo, hi)
}
