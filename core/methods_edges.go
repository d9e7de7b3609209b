// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (U,V) asc with U<V.
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.

package core

import (
	"math"
	"sort"
)

// defaultWeight is the weight reported for edges of unweighted graphs.
const defaultWeight = 1.0

// AddEdge connects u and v, adding missing endpoints.
//
// Contract:
//   - u != v, else ErrLoopNotAllowed.
//   - Unweighted graphs require weight==0 (stored as 1), else ErrBadWeight.
//   - Weighted graphs require a finite weight, else ErrBadWeight.
//   - At most one edge per unordered pair, else ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight float64) error {
	if u == v {
		return ErrLoopNotAllowed
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}
	if !g.weighted {
		weight = defaultWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adjacency[u][v]; ok {
		return ErrMultiEdgeNotAllowed
	}
	g.addVertexLocked(u)
	g.addVertexLocked(v)
	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight
	g.edgeCount++

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Weight returns the weight of edge {u,v}.
//
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns every edge once, with U<V, sorted by (U,V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for u, adj := range g.adjacency {
		for v, w := range adj {
			if u < v {
				out = append(out, Edge{U: u, V: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// TotalWeight returns Σ weight over all edges.
func (g *Graph) TotalWeight() float64 {
	var s float64
	for _, e := range g.Edges() {
		s += e.Weight
	}

	return s
}
