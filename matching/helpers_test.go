package matching_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom/core"
)

// mustGraph builds a graph on vertices 1..n from undirected edge pairs.
func mustGraph(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]), "AddEdge(%d,%d)", e[0], e[1])
	}

	return g
}

// cycleEdges returns the edges of the cycle 1–2–…–n–1.
func cycleEdges(n int) [][2]int {
	out := make([][2]int, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, [2]int{i, i%n + 1})
	}

	return out
}

// bruteForce returns the matching number of g by exhaustive search over
// vertex subsets. Intended for graphs of at most ~16 vertices.
func bruteForce(g *core.Graph) int {
	n := g.VertexCount()
	adj := make([]uint32, n+1)
	for _, e := range g.Edges() {
		adj[e.U] |= 1 << uint(e.V)
		adj[e.V] |= 1 << uint(e.U)
	}

	memo := make(map[uint32]int)
	var best func(used uint32) int
	best = func(in uint32) int {
		if r, ok := memo[in]; ok {
			return r
		}
		used := in
		v := 1
		for v <= n && used&(1<<uint(v)) != 0 {
			v++
		}
		if v > n {
			return 0
		}
		used |= 1 << uint(v)
		r := best(used) // v stays unmatched
		for w := v + 1; w <= n; w++ {
			if adj[v]&(1<<uint(w)) != 0 && used&(1<<uint(w)) == 0 {
				if c := 1 + best(used|1<<uint(w)); c > r {
					r = c
				}
			}
		}
		memo[in] = r

		return r
	}

	return best(0)
}

// shuffledGraph reports the neighbors of a wrapped graph in a seeded
// random order, so the search meets edges in an order other than sorted.
type shuffledGraph struct {
	g   *core.Graph
	rng *rand.Rand
}

func (s shuffledGraph) VertexCount() int { return s.g.VertexCount() }
func (s shuffledGraph) Connected() bool  { return s.g.Connected() }

func (s shuffledGraph) NeighborIDs(v int) ([]int, error) {
	nbrs, err := s.g.NeighborIDs(v)
	if err != nil {
		return nil, err
	}
	s.rng.Shuffle(len(nbrs), func(i, j int) { nbrs[i], nbrs[j] = nbrs[j], nbrs[i] })

	return nbrs, nil
}

// relabel returns a copy of g with vertex v renamed perm[v-1]+1.
func relabel(t testing.TB, g *core.Graph, perm []int) *core.Graph {
	t.Helper()
	out := core.NewGraph(g.VertexCount())
	for _, e := range g.Edges() {
		require.NoError(t, out.AddEdge(perm[e.U-1]+1, perm[e.V-1]+1))
	}

	return out
}
