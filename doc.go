// Package blossom computes maximum-cardinality matchings on general
// undirected graphs: the largest set of edges no two of which share a
// vertex, odd cycles included.
//
// Layout:
//
//	core/      — thread-safe simple graph over dense integer vertex IDs
//	matching/  — Gabow's labeling form of Edmonds' blossom algorithm
//	builder/   — deterministic fixture families and seeded random graphs
//	cmd/       — the blossom CLI (match, generate)
//	examples/  — a runnable scenario program
//
// Quick start:
//
//	g := core.NewGraph(3)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 3)
//	m, err := matching.MaxCardinality(g) // m.Size() == 1
//
// Graphs with several connected components go through
// matching.MaxCardinalityForest, which matches components concurrently.
package blossom
