// Package matching computes a maximum-cardinality matching on a general
// (not necessarily bipartite) undirected simple graph.
//
// What
//
//   - MaxCardinality(g) returns the largest set of edges of g such that no
//     two edges share an endpoint.
//   - MaxCardinalityForest(g) does the same for graphs with several
//     connected components, matching each component independently.
//
// How
//
//	Gabow's labeling realization of Edmonds' blossom algorithm. One search
//	phase is opened from every vertex still unmatched when the driver
//	reaches it (IDs 1..V, ascending). A phase grows an alternating tree from
//	its root through a FIFO frontier of outer vertices. Odd cycles
//	("blossoms") are never contracted; instead every vertex carries a label
//	mark and a first pointer:
//
//	  Blank          unreached this phase
//	  Start          the phase root
//	  VertexMark(x)  reached through outer vertex x by a two-edge extension
//	  EdgeMark(x,y)  absorbed into the blossom closed by edge x–y
//	  JoinFlag(x,y)  transient: visited while searching the blossom base
//
//	first[v] is the nearest non-outer ancestor of v. When an edge joins two
//	outer vertices the labeler walks both first-pointer chains to their
//	meeting point (the join) and relabels the vertices in between. When an
//	edge reaches an unmatched vertex the rematcher flips the alternating
//	path back to the root, replaying the labels, and the phase ends.
//
// Determinism
//
//	Vertices are scanned in ID order and neighbors in the order returned by
//	Graph.NeighborIDs, so the result is reproducible for a fixed graph. The
//	cardinality never depends on that order; the chosen edge set may.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·E + V³) worst case. A phase probes each directed edge at
//     most once and spends O(R) per blossom, R being the vertices it has
//     reached; it makes at most V blossom calls.
//   - Memory: O(V + E); phase scratch is allocated once per call and
//     cleared per phase in time proportional to what the phase touched.
//
// Usage
//
//	g := core.NewGraph(5)
//	_ = g.AddEdge(1, 2) // ...
//	m, err := matching.MaxCardinality(g,
//	    matching.WithOnAugment(func(root, x, y int) { /* ... */ }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrDisconnectedGraph, ErrNeighbors,
//	    // ErrOptionViolation or ErrInvariantViolation
//	}
//	for _, p := range m.Pairs() {
//	    fmt.Println(p.U, p.V)
//	}
//
// Errors
//
//   - ErrGraphNil            if the graph is nil.
//   - ErrDisconnectedGraph   if a non-empty graph is not connected
//     (use MaxCardinalityForest instead).
//   - ErrNeighbors           if the graph reports a failing or malformed adjacency.
//   - ErrOptionViolation     if an Option received an invalid value.
//   - ErrInvariantViolation  if the labeling bookkeeping is inconsistent; this
//     signals a bug and is never recovered from.
//
// Concurrency
//
//	A call owns all of its mutable state, so concurrent calls on different
//	graphs are safe. The search itself is sequential.
package matching
