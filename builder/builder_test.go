// Package builder_test contains functional tests for the graph constructors,
// verifying topology, counts, ID offsets, weights and determinism.
package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvqubo/builder"
	"github.com/katalvlaran/lvqubo/core"
	"github.com/stretchr/testify/require"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
	}{
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3},
		{name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5},
		{name: "Star(6)", ctor: builder.Star(6), wantV: 6, wantE: 5},
		{name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10},
		{name: "RandomSparse(7,1)", ctor: builder.RandomSparse(7, 1), wantV: 7, wantE: 21},
		{name: "RandomSparse(7,0)", ctor: builder.RandomSparse(7, 0), wantV: 7, wantE: 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestFromEdges_ReferenceInstance(t *testing.T) {
	pairs := [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {3, 5}, {4, 5}}
	g, err := builder.BuildGraph(nil, nil, builder.FromEdges(pairs))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, g.Vertices())
	require.Equal(t, 6, g.EdgeCount())

	_, err = builder.BuildGraph(nil, nil, builder.FromEdges([][2]int{{1, 2}, {2, 1}}))
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestBuilders_FirstIDAndWeights(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithFirstID(1), builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeight(2, 4))},
		builder.Cycle(3),
	)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, g.Vertices())
	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, e.Weight, 2.0)
		require.Less(t, e.Weight, 4.0)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() []core.Edge {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(20, 0.3))
		require.NoError(t, err)
		return g.Edges()
	}
	require.Equal(t, build(), build())
}

func TestBuilders_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
}
