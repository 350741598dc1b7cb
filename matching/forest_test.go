package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom/builder"
	"github.com/katalvlaran/blossom/core"
	"github.com/katalvlaran/blossom/matching"
)

func TestMaxCardinalityForest(t *testing.T) {
	t.Parallel()

	// C5 ∪ P4 ∪ K1 ∪ Petersen: 2 + 2 + 0 + 5
	g, err := builder.BuildGraph(nil,
		builder.Cycle(5), builder.Path(4), builder.Path(1), builder.Petersen())
	require.NoError(t, err)

	for _, par := range []int{1, 2, 8} {
		m, err := matching.MaxCardinalityForest(g, matching.WithParallelism(par))
		require.NoError(t, err, "parallelism %d", par)
		require.NoError(t, matching.Verify(g, m))
		assert.Equal(t, 9, m.Size(), "parallelism %d", par)
		assert.False(t, m.IsMatched(10), "isolated vertex stays unmatched")
		assert.Equal(t, g.VertexCount(), m.VertexCount())
	}
}

func TestMaxCardinalityForest_SumOfComponents(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)},
		builder.RandomConnected(9, 0.3),
		builder.RandomConnected(7, 0.4),
		builder.RandomConnected(11, 0.2),
	)
	require.NoError(t, err)

	var want int
	for _, comp := range g.Components() {
		sub, _, err := core.InducedSubgraph(g, comp)
		require.NoError(t, err)
		m, err := matching.MaxCardinality(sub)
		require.NoError(t, err)
		want += m.Size()
	}

	m, err := matching.MaxCardinalityForest(g, matching.WithParallelism(3))
	require.NoError(t, err)
	assert.Equal(t, want, m.Size())
}

func TestMaxCardinalityForest_Errors(t *testing.T) {
	t.Parallel()

	_, err := matching.MaxCardinalityForest(nil)
	assert.ErrorIs(t, err, matching.ErrGraphNil)

	_, err = matching.MaxCardinalityForest(core.NewGraph(3), matching.WithParallelism(-1))
	assert.ErrorIs(t, err, matching.ErrOptionViolation)

	m, err := matching.MaxCardinalityForest(core.NewGraph(0))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Size())
}
