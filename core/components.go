// SPDX-License-Identifier: MIT
// Package: blossom/core
//
// components.go — connectivity queries (breadth-first flood fill).

package core

import "sort"

// Connected reports whether every vertex is reachable from vertex 1.
// The empty graph is vacuously connected.
//
// Time:   O(V + E).
// Memory: O(V) for the seen flags and queue.
func (g *Graph) Connected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adjacency) - 1
	if n == 0 {
		return true
	}
	seen := make([]bool, n+1)

	return len(g.flood(1, seen)) == n
}

// Components returns the connected components of g. Each component is
// sorted ascending; components are ordered by their smallest vertex.
//
// Time:   O(V + E·log E) including the per-component sort.
// Memory: O(V).
func (g *Graph) Components() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adjacency) - 1
	seen := make([]bool, n+1)
	var comps [][]int
	for v := 1; v <= n; v++ {
		if seen[v] {
			continue
		}
		comp := g.flood(v, seen)
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}

// flood runs a BFS from start over unseen vertices, marking them in seen,
// and returns the vertices reached in visit order. Callers hold mu.
func (g *Graph) flood(start int, seen []bool) []int {
	queue := []int{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for w := range g.adjacency[u] {
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}

	return queue
}
