package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstnet/core"
	"github.com/katalvlaran/mstnet/disjointset"
)

// Sentinel errors returned by Verify.
var (
	// ErrCostMismatch indicates TotalCost differs from the sum of the edge weights.
	ErrCostMismatch = errors.New("prim_kruskal: total cost does not match edge weights")

	// ErrTooManyEdges indicates more than |V|-1 selected edges.
	ErrTooManyEdges = errors.New("prim_kruskal: more than |V|-1 edges")

	// ErrUnknownEdge indicates a selected edge that is not an edge of the graph.
	ErrUnknownEdge = errors.New("prim_kruskal: edge not in graph")

	// ErrCycle indicates the selected edges contain a cycle.
	ErrCycle = errors.New("prim_kruskal: selected edges form a cycle")

	// ErrNotSpanning indicates the selection leaves a connected component of the graph
	// split into several trees.
	ErrNotSpanning = errors.New("prim_kruskal: selection does not span every component")
)

// Verify checks the structural invariants of r against g:
//
//  1. TotalCost equals the sum of edge weights.
//  2. At most |V|-1 edges.
//  3. Each edge is an edge of g: g.Edges()[Seq] has the same endpoints and weight.
//  4. The edges are acyclic.
//  5. The forest has exactly as many trees as g has connected components.
//
// Minimality is not checked here; Compare against a second algorithm for that.
// A WithSingleTree Prim result on a disconnected graph fails step 5 by construction.
//
// Complexity: O(V + E·α(V)).
func Verify[V comparable](g *core.Graph[V], r Result[V]) error {
	if g == nil {
		return ErrInvalidGraph
	}
	name := r.algorithm

	// 1. cost
	var sum int64
	for _, e := range r.edges {
		sum += e.Weight
	}
	if sum != r.totalCost {
		return fmt.Errorf("Verify(%s): sum %d != total %d: %w", name, sum, r.totalCost, ErrCostMismatch)
	}

	// 2. size
	vertices := g.Vertices()
	limit := len(vertices) - 1
	if limit < 0 {
		limit = 0
	}
	if len(r.edges) > limit {
		return fmt.Errorf("Verify(%s): %d edges for %d vertices: %w", name, len(r.edges), len(vertices), ErrTooManyEdges)
	}

	// 3. membership, 4. acyclicity
	all := g.Edges()
	ds := disjointset.New(vertices...)
	for _, e := range r.edges {
		if e.Seq < 0 || e.Seq >= len(all) || !all[e.Seq].Equal(e) {
			return fmt.Errorf("Verify(%s): edge %v: %w", name, e, ErrUnknownEdge)
		}
		if !ds.Union(e.From, e.To) {
			return fmt.Errorf("Verify(%s): edge %v: %w", name, e, ErrCycle)
		}
	}

	// 5. spanning
	if want := len(g.Components()); ds.Sets() != want {
		return fmt.Errorf("Verify(%s): %d trees for %d components: %w", name, ds.Sets(), want, ErrNotSpanning)
	}

	return nil
}
