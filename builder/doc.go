// Package builder provides deterministic topology constructors for
// core.Graph fixtures: classic families with known matching numbers
// (paths, cycles, complete graphs, wheels, grids, K_{m,n}, Petersen) and a
// seeded random connected generator.
//
// Every Constructor appends a fresh, disjoint block of vertices to the
// graph it receives, so several constructors composed in one BuildGraph
// call produce a disjoint union (useful for forest-mode fixtures):
//
//	g, err := builder.BuildGraph(nil, builder.Cycle(5), builder.Path(4))
//	// vertices 1..5 form C5, vertices 6..9 form P4
//
// Stochastic constructors require an RNG (WithSeed or WithRand) and fail
// with ErrNeedRandSource otherwise. Same options, seed and constructor
// order ⇒ identical graphs.
package builder
