// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls on distinct
// pairs are safe and every edge is recorded.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := core.NewGraph(num + 1)
	var wg sync.WaitGroup
	wg.Add(num)

	// star: hub 1 to every other vertex
	for i := 2; i <= num+1; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(1, id))
		}(i)
	}
	wg.Wait()

	nbrs, err := g.NeighborIDs(1)
	require.NoError(t, err)
	require.Len(t, nbrs, num)
	require.Equal(t, num, g.EdgeCount())
	require.True(t, g.Connected())
}

// TestConcurrentReadWrite mixes readers with AddVertex/AddEdge writers.
func TestConcurrentReadWrite(t *testing.T) {
	g := core.NewGraph(1)
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func() {
			defer wg.Done()
			v := g.AddVertex()
			_ = g.AddEdge(1, v)
		}()
		go func() {
			defer wg.Done()
			_ = g.Components()
			_ = g.Edges()
		}()
	}
	wg.Wait()

	require.Equal(t, rounds+1, g.VertexCount())
	require.Equal(t, rounds, g.EdgeCount())
}
