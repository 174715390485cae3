package prim_kruskal

import "github.com/katalvlaran/mstnet/core"

// Comparison summarises how two Results over the same graph relate.
// CostMatch is the cross-validation signal: every MST of a graph has the same total
// weight, so two correct algorithms must agree on it even when their edge sets differ.
type Comparison struct {
	CostMatch       bool    // TotalCost equal
	EdgeCountMatch  bool    // len(Edges) equal
	SameEdgeSet     bool    // equal as multisets of {unordered pair, weight}
	CostDelta       int64   // a.TotalCost - b.TotalCost
	OperationsRatio float64 // a.Operations / b.Operations; 0 if b counted nothing
}

// Compare cross-validates two Results computed on the same graph.
// Complexity: O(E_T) expected.
func Compare[V comparable](a, b Result[V]) Comparison {
	c := Comparison{
		CostMatch:      a.totalCost == b.totalCost,
		EdgeCountMatch: len(a.edges) == len(b.edges),
		CostDelta:      a.totalCost - b.totalCost,
	}
	if b.operations != 0 {
		c.OperationsRatio = float64(a.operations) / float64(b.operations)
	}
	c.SameEdgeSet = c.EdgeCountMatch && sameEdgeSet(a.edges, b.edges)

	return c
}

type edgeKey[V comparable] struct {
	a, b V
	w    int64
}

// sameEdgeSet ignores orientation and Seq: a tree edge picked by Prim as B-A(1) and by
// Kruskal as A-B(1) is the same selection.
func sameEdgeSet[V comparable](x, y []core.Edge[V]) bool {
	bag := make(map[edgeKey[V]]int, len(x))
	for _, e := range x {
		bag[edgeKey[V]{e.From, e.To, e.Weight}]++
	}
	for _, e := range y {
		fwd := edgeKey[V]{e.From, e.To, e.Weight}
		rev := edgeKey[V]{e.To, e.From, e.Weight}
		switch {
		case bag[fwd] > 0:
			bag[fwd]--
		case bag[rev] > 0:
			bag[rev]--
		default:
			return false
		}
	}

	return true
}

// CrossCheck runs Prim and Kruskal sequentially on g with the same options and compares
// them, Prim first. Use runner.Runner for concurrent or batched execution.
func CrossCheck[V comparable](g *core.Graph[V], opts ...Option) (prim, kruskal Result[V], cmp Comparison, err error) {
	if prim, err = Prim(g, opts...); err != nil {
		return prim, kruskal, cmp, err
	}
	if kruskal, err = Kruskal(g, opts...); err != nil {
		return prim, kruskal, cmp, err
	}

	return prim, kruskal, Compare(prim, kruskal), nil
}
