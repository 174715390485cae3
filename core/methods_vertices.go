// File: methods_vertices.go
// Role: Vertex queries.
//
// Determinism:
//   - Vertices() returns labels in insertion order (the order given to NewGraph).
//
// Concurrency:
//   - All queries take the read lock; the vertex set never changes after NewGraph.

package core

// HasVertex reports whether v was supplied to NewGraph.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[v]

	return ok
}

// Vertices returns a copy of the vertex labels in insertion order.
//
// The first element is the fixed traversal start used by IsConnected and the default
// root used by Prim.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of adjacency entries of v (a self-loop counts twice).
// Unknown vertices have degree 0.
// Complexity: O(1).
func (g *Graph[V]) Degree(v V) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[v]
	if !ok {
		return 0
	}

	return len(g.adjacency[i])
}
