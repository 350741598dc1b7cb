// SPDX-License-Identifier: MIT
// Package: blossom/core
//
// types.go — Graph, Edge, sentinel errors and the NewGraph constructor.
//
// Concurrency:
//   - mu guards adjacency and the edge counter.
//   - adjacency[0] is allocated but never populated (ground sentinel slot).

package core

import (
	"errors"
	"sync"
)

// Ground is the reserved sentinel ID meaning "no vertex".
const Ground = 0

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an ID outside [1, VertexCount()].
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDuplicateVertex indicates a vertex listed more than once where a
	// set of distinct vertices is expected.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")
)

// Edge is an undirected edge reported with U < V.
type Edge struct {
	U int
	V int
}

// Graph is an undirected simple graph over dense vertex IDs 1..n.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	// adjacency[v] is the neighbor set of v; index 0 is the ground slot.
	adjacency []map[int]struct{}
	edgeCount int
}

// NewGraph creates a Graph with vertices 1..n and no edges.
// A negative n is treated as 0.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adjacency: make([]map[int]struct{}, n+1)}
	for v := 1; v <= n; v++ {
		g.adjacency[v] = make(map[int]struct{})
	}

	return g
}

// normalize orders an edge's endpoints so that U < V.
func normalize(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}
