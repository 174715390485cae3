// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only facade: Stats and String.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

import "fmt"

// GraphStats is a read-only snapshot of graph sizes and shape.
type GraphStats struct {
	// VertexCount is |V|.
	VertexCount int

	// EdgeCount is the number of canonical edges, loops and parallel edges included.
	EdgeCount int

	// SelfLoops counts canonical edges whose endpoints coincide.
	SelfLoops int

	// ParallelEdges counts canonical edges whose unordered endpoint pair already
	// appeared earlier in the list.
	ParallelEdges int

	// MinWeight and MaxWeight bound the edge weights; both are 0 when EdgeCount == 0.
	MinWeight int64
	MaxWeight int64

	// TotalWeight is the sum of all edge weights.
	TotalWeight int64
}

// pairKey is an order-insensitive key for an endpoint pair.
type pairKey[V comparable] struct{ a, b V }

// Stats produces a deterministic snapshot of sizes, loop/parallel counts and the
// weight range.
//
// Implementation:
//   - Stage 1: Under the read lock, scan the canonical edge list once.
//   - Stage 2: Track seen endpoint pairs (both orientations) to count parallels.
//
// Complexity: Time O(E), Space O(E).
func (g *Graph[V]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{VertexCount: len(g.vertices), EdgeCount: len(g.edges)}
	seen := make(map[pairKey[V]]struct{}, len(g.edges))
	for i, e := range g.edges {
		if i == 0 || e.Weight < st.MinWeight {
			st.MinWeight = e.Weight
		}
		if i == 0 || e.Weight > st.MaxWeight {
			st.MaxWeight = e.Weight
		}
		st.TotalWeight += e.Weight
		if e.From == e.To {
			st.SelfLoops++
		}
		if _, dup := seen[pairKey[V]{e.From, e.To}]; dup {
			st.ParallelEdges++
			continue
		}
		seen[pairKey[V]{e.From, e.To}] = struct{}{}
		seen[pairKey[V]{e.To, e.From}] = struct{}{}
	}

	return st
}

// String renders "Graph{vertices=N, edges=M}".
func (g *Graph[V]) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fmt.Sprintf("Graph{vertices=%d, edges=%d}", len(g.vertices), len(g.edges))
}
