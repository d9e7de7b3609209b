// Package core provides the problem graph consumed by the graph encoders
// (maxcut, partition): an undirected simple graph whose vertex IDs are the
// integer indices of the binary decision variables.
//
// The Graph G = (V,E) supports:
//
//   - Unweighted vs. weighted edges (WithWeighted)
//   - Constant-time membership via a nested adjacency map:
//     adjacency[u][v] = weight, mirrored for v→u
//   - Deterministic iteration: Vertices() ascending, Edges() by (U,V) with U<V
//   - A single sync.RWMutex, so instances can be built by several goroutines
//
// Self-loops and parallel edges are rejected: a QUBO pair term {i,i} is a
// linear term, and a repeated {i,j} would silently double a coefficient.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int)                       // O(1), idempotent
//	HasVertex(id int) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int, weight float64) error // O(1); auto-adds endpoints
//	HasEdge(u, v int) bool                  // O(1)
//	Weight(u, v int) (float64, error)       // O(1)
//
//	// Query
//	Vertices() []int                        // O(V·log V)
//	Edges() []Edge                          // O(E·log E)
//	Neighbors(id int) ([]int, error)        // O(d·log d)
//	Degree(id int) (int, error)             // O(1)
//	VertexCount(), EdgeCount() int          // O(1)
//	Clone() *Graph                          // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph, or non-finite weight
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
