// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted *core.Graph: Prim's algorithm and Kruskal's algorithm, plus the
// tooling to cross-validate them.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, weighted graph G = (V, E), an MST is a subset T ⊆ E that connects
//     every vertex with no cycle and minimal total weight. On a disconnected graph both
//     algorithms return a minimum spanning forest: one tree per connected component.
//
//   - Why two algorithms?
//     All MSTs of a graph share the same total weight, even when ties let the edge sets
//     differ. Running both and comparing costs (Compare) is a cheap correctness oracle.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...) (Result[V], error)
//
//   - Strategy: sort all edges by (Weight, Seq), then accept each edge whose endpoints lie in
//     different disjointset trees. Stop once |V|−1 edges are accepted.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g, opts...) (Result[V], error)
//
//   - Strategy: grow a tree from a root with a min-heap keyed by the cheapest known edge
//     into each outside vertex. Stale heap entries are skipped on pop (lazy deletion).
//     When the heap drains, restart from the next unvisited vertex unless WithSingleTree.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Compute(g, opts...) dispatches on WithMethod; CrossCheck runs both and compares.
//
// Results and Instrumentation
//
//	Result carries the selected edges, TotalCost, VertexCount, InputEdgeCount, Elapsed and an
//	abstract Operations count. The count follows fixed rules so runs are comparable:
//
//	- Kruskal: ceil(E·log2 E) for the sort, +1 per examined edge, +2 per accepted edge.
//	- Prim:    +1 per heap pop, +1 per incident edge inspected, +1 per key improvement push.
//
//	Operations is a benchmarking aid only. Elapsed uses the clock from WithClock (time.Now).
//
// Determinism
//
//	Equal weights are ordered by insertion sequence (Edge.Seq) in Kruskal and by push
//	order in Prim, so the same graph always yields the same edges in the same order.
//
// Error Conditions
//
//	- ErrInvalidGraph  : g is nil.
//	- ErrRootNotFound  : WithRoot names a missing vertex or a value of the wrong type (Prim).
//	- ErrUnknownMethod : Compute received an unrecognised Method.
//
//	Verify reports ErrCostMismatch, ErrTooManyEdges, ErrUnknownEdge, ErrCycle and
//	ErrNotSpanning, each wrapped with the offending algorithm and edge.
//
// Example
//
//	g := core.MustGraph([]string{"A", "B", "C"})
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	_ = g.AddEdge("A", "C", 4)
//	p, k, cmp, _ := prim_kruskal.CrossCheck(g)
//	fmt.Println(p.TotalCost(), k.TotalCost(), cmp.CostMatch) // 3 3 true
package prim_kruskal
