// Package core provides the weighted, undirected, vertex-labeled Graph consumed by the
// MST algorithms in prim_kruskal.
//
// The Graph G = (V,E) is generic over its vertex label type:
//
//   - Any comparable type works as a label (string names, int indices, small structs).
//   - Vertices are fixed at construction (NewGraph) and kept in insertion order.
//   - Edges are appended with AddEdge and validated against the vertex set
//     (ErrInvalidVertex on an unknown endpoint).
//   - A canonical edge list keeps every edge once, tagged with its insertion
//     sequence number (Edge.Seq) for deterministic tie-breaking.
//   - A symmetric adjacency structure mirrors every edge in both directions.
//   - Self-loops and parallel edges are stored as given; it is the algorithms'
//     job to treat them as independent candidates.
//
// Core Methods:
//
//	// Construction
//	NewGraph(vertices []V) (*Graph[V], error)  // O(V)
//	AddEdge(a, b V, weight int64) error        // O(1) amortized
//
//	// Query
//	Vertices() []V                   // O(V), insertion order
//	Edges() []Edge[V]                // O(E), insertion order
//	Neighbors(v V) []Neighbor[V]     // O(deg v), empty for unknown vertex
//	ForEachNeighbor(v V, fn)         // O(deg v), no copy
//	HasVertex / HasEdge / Degree     // O(1) / O(deg) / O(1)
//	VertexCount() / EdgeCount()      // O(1)
//
//	// Connectivity
//	IsConnected() bool               // O(V+E), DFS from the first vertex
//	Components() [][]V               // O(V+E)
//
//	// Diagnostics
//	Stats() GraphStats               // O(E)
//
// Concurrency:
//
//	A single sync.RWMutex guards the graph. After population, the graph is read-only
//	for MST purposes and may be shared by several algorithms running in parallel.
//
// Quick example:
//
//	g, _ := core.NewGraph([]string{"A", "B", "C"})
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	fmt.Println(g.IsConnected()) // true
package core
