// Package core_test verifies core.Graph contracts.
//
// Purpose:
//   - Lock in deterministic ordering of Vertices/Edges/Neighbors.
//   - Validate constraint enforcement (weights, loops, multi-edges).
package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lvqubo/core"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddEdgeAutoAddsVertices(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(3, 1, 0))
	require.NoError(t, g.AddEdge(2, 3, 0))

	require.Equal(t, []int{1, 2, 3}, g.Vertices())
	require.True(t, g.HasEdge(1, 3))
	require.True(t, g.HasEdge(3, 1), "undirected edges are mirrored")
	require.False(t, g.HasEdge(1, 2))
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, []core.Edge{{U: 1, V: 3, Weight: 1}, {U: 2, V: 3, Weight: 1}}, g.Edges())
}

func TestGraph_Constraints(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge(1, 1, 0), core.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge(1, 2, 5), core.ErrBadWeight)
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.ErrorIs(t, g.AddEdge(2, 1, 0), core.ErrMultiEdgeNotAllowed)
	require.Equal(t, 1, g.EdgeCount())

	w := core.NewGraph(core.WithWeighted())
	require.ErrorIs(t, w.AddEdge(1, 2, math.Inf(1)), core.ErrBadWeight)
	require.NoError(t, w.AddEdge(1, 2, 2.5))
	got, err := w.Weight(2, 1)
	require.NoError(t, err)
	require.Equal(t, 2.5, got)
	_, err = w.Weight(1, 3)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.Equal(t, 2.5, w.TotalWeight())
}

func TestGraph_NeighborsDegree(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(9)
	require.NoError(t, g.AddEdge(1, 4, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	nb, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, nb)

	d, err := g.Degree(9)
	require.NoError(t, err)
	require.Equal(t, 0, d)

	_, err = g.Degree(42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors(42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.Equal(t, 4, g.VertexCount())
}

func TestGraph_CloneIsDeep(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 0))
	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 3, 0))

	require.False(t, g.HasEdge(2, 3))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, c.EdgeCount())
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = g.AddEdge(i, i+100, 0)
		}(i)
	}
	wg.Wait()
	require.Equal(t, 50, g.EdgeCount())
	require.Equal(t, 100, g.VertexCount())
}
