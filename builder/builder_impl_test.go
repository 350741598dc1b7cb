// Package builder_test contains functional tests for every Constructor in
// the builder package: vertex/edge counts, topology spot checks, parameter
// validation and seeded determinism.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom/builder"
	"github.com/katalvlaran/blossom/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 1; i < 4; i++ {
					assert.True(t, g.HasEdge(i, i+1), "missing path edge %d-%d", i, i+1)
				}
			},
		},
		{name: "Path(1)", ctor: builder.Path(1), wantV: 1, wantE: 0},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(5, 1), "missing closing edge")
				for v := 1; v <= 5; v++ {
					d, err := g.Degree(v)
					require.NoError(t, err)
					assert.Equal(t, 2, d)
				}
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(1)
				require.NoError(t, err)
				assert.Equal(t, 3, d)
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8, // 4 spokes + 4 rim
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(1, 3), "missing spoke")
				assert.True(t, g.HasEdge(5, 2), "missing rim closing edge")
			},
		},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(1, 2), "left side must be independent")
				assert.False(t, g.HasEdge(3, 4), "right side must be independent")
				assert.True(t, g.HasEdge(2, 5))
			},
		},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantV: 12, wantE: 17,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(1, 2), "missing right edge")
				assert.True(t, g.HasEdge(1, 5), "missing down edge")
				assert.False(t, g.HasEdge(4, 5), "rows must not wrap")
			},
		},
		{
			name: "Petersen", ctor: builder.Petersen(), wantV: 10, wantE: 15,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v := 1; v <= 10; v++ {
					d, err := g.Degree(v)
					require.NoError(t, err)
					assert.Equal(t, 3, d, "Petersen is cubic")
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount(), "vertex count")
			assert.Equal(t, tc.wantE, g.EdgeCount(), "edge count")
			assert.True(t, g.Connected(), "builder output must be connected")
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_TooFewVertices(t *testing.T) {
	t.Parallel()

	for name, ctor := range map[string]builder.Constructor{
		"Path(0)":                builder.Path(0),
		"Cycle(2)":               builder.Cycle(2),
		"Complete(0)":            builder.Complete(0),
		"Star(1)":                builder.Star(1),
		"Wheel(3)":               builder.Wheel(3),
		"Grid(0,3)":              builder.Grid(0, 3),
		"CompleteBipartite(3,0)": builder.CompleteBipartite(3, 0),
		"RandomConnected(0,0.5)": builder.RandomConnected(0, 0.5),
	} {
		_, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildGraph_Composition(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Cycle(5), builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 9, g.VertexCount())
	assert.Equal(t, 8, g.EdgeCount())
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5}, {6, 7, 8, 9}}, g.Components())
	assert.False(t, g.HasEdge(5, 6), "blocks must be disjoint")
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, builder.Path(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomConnected(t *testing.T) {
	t.Parallel()

	t.Run("needs rng", func(t *testing.T) {
		_, err := builder.BuildGraph(nil, builder.RandomConnected(5, 0.3))
		assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	})

	t.Run("probability range", func(t *testing.T) {
		for _, p := range []float64{-0.1, 1.5} {
			_, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomConnected(5, p))
			assert.ErrorIs(t, err, builder.ErrInvalidProbability, "p=%v", p)
		}
	})

	t.Run("p=0 is a spanning tree", func(t *testing.T) {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomConnected(8, 0))
		require.NoError(t, err)
		assert.Equal(t, 7, g.EdgeCount())
		assert.True(t, g.Connected())
	})

	t.Run("p=1 is complete", func(t *testing.T) {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomConnected(8, 1))
		require.NoError(t, err)
		assert.Equal(t, 28, g.EdgeCount())
	})

	t.Run("seeded determinism", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			a, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomConnected(9, 0.3))
			require.NoError(t, err)
			b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(seed)))}, builder.RandomConnected(9, 0.3))
			require.NoError(t, err)
			assert.Equal(t, a.Edges(), b.Edges(), "seed %d", seed)
			assert.True(t, a.Connected(), "seed %d", seed)
		}
	})
}

func TestWithRand_NilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
}
