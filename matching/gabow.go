// SPDX-License-Identifier: MIT
// Package: blossom/matching
//
// gabow.go — the search driver: one exploration phase per unmatched vertex.

package matching

import "fmt"

// searcher holds the state of one MaxCardinality call. mate is the only
// state that outlives a phase.
type searcher struct {
	adj   [][]int // adj[v] snapshot of Graph.NeighborIDs(v); adj[0] unused
	mate  []int   // mate[v] = partner or ground; mate[0] stays ground
	opts  Options
	phase *phase // scratch, reopened for every root
}

// phase is the scratch state of one search from a single root. Its
// storage is allocated once per MaxCardinality call; open clears only
// what the previous phase touched.
type phase struct {
	root     int
	labels   labelStore
	visited  *edgeVisitationSet
	frontier *frontierQueue
}

func newPhase(n int) *phase {
	return &phase{
		labels:   newLabelStore(n),
		visited:  newEdgeVisitationSet(n),
		frontier: newFrontierQueue(n),
	}
}

// open clears the previous phase and seeds root as Start.
func (p *phase) open(root int) {
	p.labels.reset()
	p.visited.reset()
	p.frontier.reset()

	p.root = root
	p.labels.set(root, startMark, ground)
	p.frontier.push(root)
}

// MaxCardinality returns a maximum-cardinality matching of the connected
// undirected simple graph g.
//
// Vertices are scanned in increasing ID order; every vertex still unmatched
// when reached opens a search phase. Vertices left unmatched at the end
// cannot be matched by any larger matching.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// ErrDisconnectedGraph when a non-empty g is not connected, ErrNeighbors
// when the adjacency cannot be read, and ErrInvariantViolation if the
// labeling bookkeeping breaks. The empty graph yields an empty matching.
func MaxCardinality(g Graph, opts ...Option) (*Matching, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	if n <= 0 {
		return emptyMatching(0), nil
	}
	if !g.Connected() {
		return nil, fmt.Errorf("%w: %d vertices", ErrDisconnectedGraph, n)
	}

	adj, err := snapshot(g, n)
	if err != nil {
		return nil, err
	}

	s := &searcher{adj: adj, mate: make([]int, n+1), opts: o, phase: newPhase(n)}
	for u := 1; u <= n; u++ {
		if s.mate[u] != ground {
			continue
		}
		if err = s.search(u); err != nil {
			return nil, err
		}
	}
	if err = checkSymmetric(s.mate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}

	return &Matching{mate: s.mate}, nil
}

// search runs one phase rooted at the unmatched vertex u. It returns after
// the first augmentation or when the frontier is exhausted.
func (s *searcher) search(u int) error {
	s.opts.OnPhase(u)
	p := s.phase
	p.open(u)

	for !p.frontier.empty() {
		x := p.frontier.pop()
		for _, y := range s.adj[x] {
			if !p.visited.visit(x, y) {
				continue
			}

			switch {
			case s.mate[y] == ground && y != u:
				// augmenting path root ~> x – y
				s.opts.OnAugment(u, x, y)
				s.mate[y] = x
				return s.rematch(p, x, y)

			case p.labels.reached(y):
				// x and y both outer: possible blossom
				if err := s.label(p, x, y); err != nil {
					return err
				}

			default:
				// y matched and unreached: grow the tree by y – mate(y)
				v := s.mate[y]
				if !p.labels.reached(v) {
					p.labels.set(v, vertexMark(x), y)
					p.frontier.push(v)
				}
			}
		}
	}

	return nil
}

// snapshot reads every neighbor list once and validates it against the
// simple-graph contract.
func snapshot(g Graph, n int) ([][]int, error) {
	adj := make([][]int, n+1)
	for v := 1; v <= n; v++ {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %v", ErrNeighbors, v, err)
		}
		for _, w := range nbrs {
			if w <= ground || w > n || w == v {
				return nil, fmt.Errorf("%w: vertex %d reports neighbor %d outside [1,%d] or itself",
					ErrNeighbors, v, w, n)
			}
		}
		adj[v] = nbrs
	}

	return adj, nil
}
