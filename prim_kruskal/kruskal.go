// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a Result holding the selected
// edges, their total cost and the run's instrumentation.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mstnet/core"
	"github.com/katalvlaran/mstnet/disjointset"
)

// Kruskal computes the Minimum Spanning Tree (or spanning forest, for a disconnected
// graph) of an undirected, weighted graph using a disjoint-set with path compression and
// union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : if g is nil.
//
// Steps:
//  1. Snapshot vertices and edges; |V| == 0 → empty Result.
//  2. Sort edges by (Weight, Seq) so equal weights keep insertion order.
//     Charge ceil(E·log2 E) operations for the sort.
//  3. Create one singleton set per vertex.
//  4. For each edge in order: stop once |V|-1 edges are accepted; otherwise charge one
//     operation, and if Union(From, To) merges two sets, accept the edge and charge two.
//     Self-loops and cycle-closing edges are rejected by Union.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal[V comparable](g *core.Graph[V], opts ...Option) (Result[V], error) {
	if g == nil {
		return Result[V]{}, ErrInvalidGraph
	}
	o := resolve(opts)
	sw := startStopwatch(o.Now)

	// 1. Snapshot.
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return newResult[V](AlgorithmKruskal, nil, 0, 0, 0, 0, sw.elapsed()), nil
	}
	edges := g.Edges()

	// 2. Sort with an explicit tie-break; Seq is unique so the order is total.
	var ops opCounter
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		return edges[i].Seq < edges[j].Seq
	})
	ops.add(sortCost(len(edges)))

	// 3. makeSet for every vertex.
	ds := disjointset.New(vertices...)

	// 4. Greedy selection.
	mst := make([]core.Edge[V], 0, n-1)
	var total int64
	for _, e := range edges {
		if len(mst) == n-1 {
			break
		}
		ops.add(1)
		if !ds.Union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		ops.add(2)
	}

	return newResult(AlgorithmKruskal, mst, total, n, len(edges), ops.n, sw.elapsed()), nil
}
