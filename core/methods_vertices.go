// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog and adjacency share g.mu.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
}

// addVertexLocked registers id and its adjacency bucket. Caller holds g.mu.
func (g *Graph) addVertexLocked(id int) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[int]float64)
}

// HasVertex reports whether id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Neighbors returns the sorted neighbor IDs of id.
//
// Errors: ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(adj))
	for v := range adj {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
//
// Errors: ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(adj), nil
}

// Clone returns a deep copy of the Graph.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph{
		weighted:  g.weighted,
		vertices:  make(map[int]struct{}, len(g.vertices)),
		adjacency: make(map[int]map[int]float64, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for u, adj := range g.adjacency {
		inner := make(map[int]float64, len(adj))
		for v, w := range adj {
			inner[v] = w
		}
		c.adjacency[u] = inner
	}

	return c
}
