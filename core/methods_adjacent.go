// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors, ForEachNeighbor).
//
// Determinism:
//   - Neighbors(v) lists entries in edge insertion order.
//
// Concurrency:
//   - Read lock only. Algorithms that walk adjacency many times should prefer
//     ForEachNeighbor to avoid a copy per visit.

package core

// Neighbors returns a copy of the (otherEndpoint, weight) entries incident to v.
//
// Unknown or isolated vertices yield an empty slice and no error: the MST algorithms
// only ever ask about vertices they obtained from the graph itself.
//
// Complexity: O(deg(v)).
func (g *Graph[V]) Neighbors(v V) []Neighbor[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[v]
	if !ok {
		return []Neighbor[V]{}
	}
	out := make([]Neighbor[V], len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out
}

// ForEachNeighbor calls fn for every adjacency entry of v, in insertion order, while
// holding the read lock. fn must not call back into mutating Graph methods.
// Iteration stops early when fn returns false.
//
// Complexity: O(deg(v)) plus the cost of fn.
func (g *Graph[V]) ForEachNeighbor(v V, fn func(Neighbor[V]) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[v]
	if !ok {
		return
	}
	for _, nb := range g.adjacency[i] {
		if !fn(nb) {
			return
		}
	}
}
