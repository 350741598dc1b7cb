// SPDX-License-Identifier: MIT
// Package: blossom/core
//
// methods.go — vertex and edge lifecycle plus adjacency queries.
//
// Determinism:
//   - NeighborIDs and Edges return freshly allocated, sorted slices.

package core

import (
	"fmt"
	"sort"
)

// AddVertex appends a new vertex and returns its ID (VertexCount()+1).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = append(g.adjacency, make(map[int]struct{}))

	return len(g.adjacency) - 1
}

// HasVertex reports whether v is a valid vertex ID (1 ≤ v ≤ VertexCount()).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(v)
}

// hasVertex is HasVertex without locking; callers hold mu.
func (g *Graph) hasVertex(v int) bool {
	return v > Ground && v < len(g.adjacency)
}

// AddEdge inserts the undirected edge u–v.
//
// Errors:
//   - ErrVertexNotFound: u or v outside [1, V].
//   - ErrLoopNotAllowed: u == v.
//   - ErrMultiEdgeNotAllowed: the edge already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(u) {
		return fmt.Errorf("AddEdge(%d,%d): vertex %d: %w", u, v, u, ErrVertexNotFound)
	}
	if !g.hasVertex(v) {
		return fmt.Errorf("AddEdge(%d,%d): vertex %d: %w", u, v, v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if _, ok := g.adjacency[u][v]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	// mirror: undirected edges are stored from both endpoints
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge u–v.
// Returns ErrEdgeNotFound if the edge (or either endpoint) does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(u) || !g.hasVertex(v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	if _, ok := g.adjacency[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the undirected edge u–v exists.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(u) || !g.hasVertex(v) {
		return false
	}
	_, ok := g.adjacency[u][v]

	return ok
}

// NeighborIDs returns the neighbors of v sorted ascending.
// The slice is freshly allocated; callers may retain and mutate it.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", v, ErrVertexNotFound)
	}

	return g.sortedNeighbors(v), nil
}

// sortedNeighbors collects and sorts the neighbor set of v; callers hold mu.
func (g *Graph) sortedNeighbors(v int) []int {
	out := make([]int, 0, len(g.adjacency[v]))
	for w := range g.adjacency[v] {
		out = append(out, w)
	}
	sort.Ints(out)

	return out
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}

	return len(g.adjacency[v]), nil
}

// VertexCount returns V; valid IDs are 1..V.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency) - 1
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, with U < V, sorted by (U, V).
// Complexity: O(V + E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u := 1; u < len(g.adjacency); u++ {
		for v := range g.adjacency[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
