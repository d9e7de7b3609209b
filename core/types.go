// Package core defines the Graph and Edge types used as problem instances.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph, or NaN/Inf.
//	ErrLoopNotAllowed      - self-loop.
//	ErrMultiEdgeNotAllowed - parallel edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph or a non-finite weight.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two variables.
//
// Edges returned by the Graph always satisfy U < V. Weight is 1 on
// unweighted graphs.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int

	// Weight scales the edge's contribution to an objective.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows arbitrary finite edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is an undirected simple graph over integer vertex IDs.
//
// mu guards vertices and adjacency. adjacency[u][v] holds the edge weight
// and is mirrored under adjacency[v][u].
type Graph struct {
	mu sync.RWMutex

	weighted bool // allow weights other than 0 on AddEdge

	vertices  map[int]struct{}
	adjacency map[int]map[int]float64
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		adjacency: make(map[int]map[int]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether the graph accepts edge weights.
func (g *Graph) Weighted() bool { return g.weighted }
