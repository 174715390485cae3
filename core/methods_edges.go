// File: methods_edges.go
// Role: Edge insertion and canonical edge list queries.
//
// Determinism:
//   - Edges() returns the canonical list in insertion order; Edge.Seq == position.
//
// Concurrency:
//   - AddEdge takes the write lock; queries take the read lock.

package core

import "fmt"

// AddEdge appends the undirected edge {a,b,weight} to the canonical edge list and to
// both adjacency directions.
//
// Steps:
//  1. Under the write lock, resolve a and b; an unknown label fails with ErrInvalidVertex.
//  2. Assign Seq = len(edges) and append the canonical edge.
//  3. Append (b,weight) to adjacency[a] and (a,weight) to adjacency[b].
//
// Self-loops and parallel edges are accepted as-is; MST algorithms treat each
// canonical edge as an independent candidate.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(a, b V, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ia, okA := g.index[a]
	if !okA {
		return fmt.Errorf("AddEdge(%v,%v): unknown vertex %v: %w", a, b, a, ErrInvalidVertex)
	}
	ib, okB := g.index[b]
	if !okB {
		return fmt.Errorf("AddEdge(%v,%v): unknown vertex %v: %w", a, b, b, ErrInvalidVertex)
	}

	seq := len(g.edges)
	g.edges = append(g.edges, Edge[V]{From: a, To: b, Weight: weight, Seq: seq})
	g.adjacency[ia] = append(g.adjacency[ia], Neighbor[V]{To: b, Weight: weight, Seq: seq})
	g.adjacency[ib] = append(g.adjacency[ib], Neighbor[V]{To: a, Weight: weight, Seq: seq})

	return nil
}

// Edges returns a copy of the canonical edge list in insertion order.
// Complexity: O(E).
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[V], len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of canonical edges, parallel edges and loops included.
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasEdge reports whether at least one canonical edge joins a and b, in either order.
// Complexity: O(deg(a)).
func (g *Graph[V]) HasEdge(a, b V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[a]
	if !ok {
		return false
	}
	for _, nb := range g.adjacency[i] {
		if nb.To == b {
			return true
		}
	}

	return false
}
