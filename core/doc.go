// Package core provides the undirected simple Graph consumed by the
// matching algorithms of this module.
//
// Vertices are dense integer IDs in [1, V]. The ID 0 is reserved as the
// "ground" sentinel (no vertex) and is never a valid vertex, so algorithms
// can index per-vertex slices of length V+1 directly by vertex ID.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only: AddEdge(u,v) is visible from both endpoints.
//   - Simple only: self-loops → ErrLoopNotAllowed, parallel edges →
//     ErrMultiEdgeNotAllowed.
//   - Deterministic iteration: NeighborIDs, Edges and Components all return
//     sorted results, so every algorithm built on top is reproducible.
//   - Thread-safe: one sync.RWMutex; queries take the read lock, mutations
//     the write lock.
//
// Core Methods:
//
//	// Vertex lifecycle
//	NewGraph(n int) *Graph               // O(n): vertices 1..n
//	AddVertex() int                      // O(1): appends vertex V+1
//	HasVertex(v int) bool                // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error              // O(1)
//	RemoveEdge(u, v int) error           // O(1)
//	HasEdge(u, v int) bool               // O(1)
//
//	// Query
//	NeighborIDs(v int) ([]int, error)    // O(d·log d), sorted
//	Degree(v int) (int, error)           // O(1)
//	Edges() []Edge                       // O(E·log E), U < V
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1)
//
//	// Structure
//	Connected() bool                     // O(V+E)
//	Components() [][]int                 // O(V+E)
//	Clone() *Graph                       // O(V+E)
//	InducedSubgraph(g, keep)             // O(V+E), relabels to 1..k
//
// Errors:
//
//	ErrVertexNotFound      – ID outside [1, V]
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – u == v
//	ErrMultiEdgeNotAllowed – edge already present
//	ErrDuplicateVertex     – vertex repeated in an InducedSubgraph keep list
package core
