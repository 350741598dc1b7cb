// SPDX-License-Identifier: MIT
// Package: blossom/core
//
// view.go — non-mutating graph views (deep copy and relabeled induced subgraphs).
//
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

import (
	"fmt"
	"sort"
)

// Clone returns a deep copy of g. The source is not mutated.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{adjacency: make([]map[int]struct{}, len(g.adjacency)), edgeCount: g.edgeCount}
	for v := 1; v < len(g.adjacency); v++ {
		nbrs := make(map[int]struct{}, len(g.adjacency[v]))
		for w := range g.adjacency[v] {
			nbrs[w] = struct{}{}
		}
		out.adjacency[v] = nbrs
	}

	return out
}

// InducedSubgraph returns the subgraph induced by keep, relabeled so that
// keep[i] becomes vertex i+1. The second result maps local IDs back to the
// IDs of g (index 0 holds Ground). The input graph is not mutated.
//
// Errors:
//   - ErrVertexNotFound: an ID in keep is outside [1, V].
//   - ErrDuplicateVertex: keep lists the same vertex twice.
//
// Complexity: O(V + E·log E).
func InducedSubgraph(g *Graph, keep []int) (*Graph, []int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	local := make(map[int]int, len(keep))
	global := make([]int, len(keep)+1)
	for i, v := range keep {
		if !g.hasVertex(v) {
			return nil, nil, fmt.Errorf("InducedSubgraph: vertex %d: %w", v, ErrVertexNotFound)
		}
		if _, dup := local[v]; dup {
			return nil, nil, fmt.Errorf("InducedSubgraph: vertex %d listed twice: %w", v, ErrDuplicateVertex)
		}
		local[v] = i + 1
		global[i+1] = v
	}

	// collect edges with both endpoints kept, in local IDs
	var edges []Edge
	for _, v := range keep {
		for w := range g.adjacency[v] {
			lw, ok := local[w]
			if ok && local[v] < lw {
				edges = append(edges, normalize(local[v], lw))
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})

	out := NewGraph(len(keep))
	for _, e := range edges {
		out.adjacency[e.U][e.V] = struct{}{}
		out.adjacency[e.V][e.U] = struct{}{}
	}
	out.edgeCount = len(edges)

	return out, global, nil
}
