// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// result.go — the Matching container, its constructors and validators.

package matching

import "fmt"

// Pair is one matched edge, reported with U < V.
type Pair struct {
	U int
	V int
}

// Matching maps each matched vertex to its partner. It is immutable once
// returned.
type Matching struct {
	mate []int // mate[v] = partner or ground; index 0 unused
}

func emptyMatching(n int) *Matching {
	return &Matching{mate: make([]int, n+1)}
}

// NewMatching builds a Matching over vertices 1..n from pairs. The order of
// the endpoints inside a pair is irrelevant.
// Returns ErrInvalidMatching if a pair has an endpoint outside [1,n], is a
// loop, or shares an endpoint with another pair (repeating the same pair
// is also rejected).
func NewMatching(n int, pairs []Pair) (*Matching, error) {
	if n < 0 {
		n = 0
	}
	m := emptyMatching(n)
	for _, p := range pairs {
		if p.U <= ground || p.U > n || p.V <= ground || p.V > n {
			return nil, fmt.Errorf("%w: pair (%d,%d) outside [1,%d]", ErrInvalidMatching, p.U, p.V, n)
		}
		if p.U == p.V {
			return nil, fmt.Errorf("%w: pair (%d,%d) is a loop", ErrInvalidMatching, p.U, p.V)
		}
		if m.mate[p.U] != ground || m.mate[p.V] != ground {
			return nil, fmt.Errorf("%w: pair (%d,%d) reuses a matched vertex", ErrInvalidMatching, p.U, p.V)
		}
		m.mate[p.U] = p.V
		m.mate[p.V] = p.U
	}

	return m, nil
}

// Mate returns the partner of v and whether v is matched.
func (m *Matching) Mate(v int) (int, bool) {
	if v <= ground || v >= len(m.mate) || m.mate[v] == ground {
		return ground, false
	}

	return m.mate[v], true
}

// IsMatched reports whether v has a partner.
func (m *Matching) IsMatched(v int) bool {
	_, ok := m.Mate(v)
	return ok
}

// VertexCount returns the number of vertices the matching is defined over.
func (m *Matching) VertexCount() int { return len(m.mate) - 1 }

// Size returns the number of matched edges.
func (m *Matching) Size() int {
	var c int
	for v := 1; v < len(m.mate); v++ {
		if m.mate[v] > v {
			c++
		}
	}

	return c
}

// Pairs returns each matched edge once with U < V, sorted by U.
func (m *Matching) Pairs() []Pair {
	out := make([]Pair, 0, m.Size())
	for v := 1; v < len(m.mate); v++ {
		if w := m.mate[v]; w > v {
			out = append(out, Pair{U: v, V: w})
		}
	}

	return out
}

// Map returns the vertex → partner mapping for every matched vertex; both
// directions of each pair are present.
func (m *Matching) Map() map[int]int {
	out := make(map[int]int, 2*m.Size())
	for v := 1; v < len(m.mate); v++ {
		if w := m.mate[v]; w != ground {
			out[v] = w
		}
	}

	return out
}

// Verify checks that m is a matching of g: same vertex count, every pair
// an edge of g. Returns ErrInvalidMatching otherwise, or ErrNeighbors if
// g cannot report an adjacency.
func Verify(g Graph, m *Matching) error {
	if g == nil {
		return ErrGraphNil
	}
	if m == nil {
		return fmt.Errorf("%w: nil matching", ErrInvalidMatching)
	}
	if n := g.VertexCount(); n != m.VertexCount() {
		return fmt.Errorf("%w: matching covers %d vertices, graph has %d", ErrInvalidMatching, m.VertexCount(), n)
	}
	if err := checkSymmetric(m.mate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMatching, err)
	}
	for _, p := range m.Pairs() {
		nbrs, err := g.NeighborIDs(p.U)
		if err != nil {
			return fmt.Errorf("%w: vertex %d: %v", ErrNeighbors, p.U, err)
		}
		if !containsInt(nbrs, p.V) {
			return fmt.Errorf("%w: pair (%d,%d) is not an edge", ErrInvalidMatching, p.U, p.V)
		}
	}

	return nil
}

// checkSymmetric reports the first v with mate[mate[v]] != v.
func checkSymmetric(mate []int) error {
	if len(mate) > 0 && mate[ground] != ground {
		return fmt.Errorf("ground slot holds %d", mate[ground])
	}
	for v := 1; v < len(mate); v++ {
		w := mate[v]
		if w == ground {
			continue
		}
		if w < ground || w >= len(mate) || w == v || mate[w] != v {
			return fmt.Errorf("asymmetric pairing: %d->%d", v, w)
		}
	}

	return nil
}

// containsInt reports whether x occurs in ids; Graph does not promise sorted lists.
func containsInt(ids []int, x int) bool {
	for _, id := range ids {
		if id == x {
			return true
		}
	}

	return false
}
