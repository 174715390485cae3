// Package prim_kruskal defines configuration options, sentinel errors and the immutable
// Result value for MST computation. It supports selecting between Kruskal and Prim via
// Options and dispatching through Compute.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/mstnet/core"
)

// ErrInvalidGraph indicates that an MST algorithm was handed a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph")

// ErrRootNotFound indicates that WithRoot named a vertex that is not in the graph, or a
// value whose type differs from the graph's label type.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrUnknownMethod indicates that Compute received a Method it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// Method names an MST algorithm.
type Method string

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim Method = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal Method = "kruskal"

// Algorithm display names carried by Result.Algorithm.
const (
	AlgorithmPrim    = "Prim's Algorithm"
	AlgorithmKruskal = "Kruskal's Algorithm"
)

// MSTOptions configures which MST algorithm to run and how Prim chooses its roots.
// Use DefaultOptions() to get a default setup (Kruskal, spanning forest, wall clock).
//
// Fields:
//
//	Method     Method           — MethodPrim or MethodKruskal (Compute only).
//	Root       any              — Prim start vertex; nil means the first inserted vertex.
//	SingleTree bool             — Prim stops after the root's component.
//	Now        func() time.Time — clock used for Result.Elapsed.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method Method

	// Root is the starting vertex for Prim. Its dynamic type must equal the graph's
	// label type. Unused by Kruskal.
	Root any

	// SingleTree makes Prim cover only the component reachable from Root instead of
	// restarting on every unvisited vertex. Unused by Kruskal.
	SingleTree bool

	// Now is the clock used to measure elapsed time.
	Now func() time.Time
}

// Option configures MSTOptions. All Option functions modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method used by Compute.
func WithMethod(m Method) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim; ignored by Kruskal.
func WithRoot(root any) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithSingleTree returns an Option that restricts Prim to the root's component, so a
// disconnected input yields a partial tree rather than a spanning forest.
func WithSingleTree() Option {
	return func(opts *MSTOptions) {
		opts.SingleTree = true
	}
}

// WithClock returns an Option that replaces the wall clock used for timing.
// Panics on nil: a missing clock is a programmer error.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("prim_kruskal: WithClock(nil)")
	}
	return func(opts *MSTOptions) {
		opts.Now = now
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method     = MethodKruskal
//	– Root       = nil (first inserted vertex)
//	– SingleTree = false (spanning forest)
//	– Now        = time.Now
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Now:    time.Now,
	}
}

// resolve applies opts over DefaultOptions, last-wins.
func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodKruskal: calls Kruskal(g, opts...).
//	– MethodPrim:    calls Prim(g, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
//
// Note: this is optional scaffolding; Prim and Kruskal can still be called directly.
func Compute[V comparable](g *core.Graph[V], opts ...Option) (Result[V], error) {
	switch o := resolve(opts); o.Method {
	case MethodKruskal:
		return Kruskal(g, opts...)
	case MethodPrim:
		return Prim(g, opts...)
	default:
		return Result[V]{}, fmt.Errorf("Compute(%q): %w", o.Method, ErrUnknownMethod)
	}
}

// Result is the immutable outcome of one algorithm run: the selected tree (or forest)
// edges, their total cost, and instrumentation.
//
// Invariants:
//   - TotalCost() == sum of Edges()[i].Weight.
//   - len(Edges()) <= VertexCount()-1, with equality iff the run spanned every vertex.
//
// Results are created once per run and never mutated; Edges returns a copy.
type Result[V comparable] struct {
	algorithm      string
	edges          []core.Edge[V]
	totalCost      int64
	vertexCount    int
	inputEdgeCount int
	operations     int64
	elapsed        time.Duration
}

// NewResult builds a Result from externally computed edges; TotalCost is derived from
// the edges so the cost invariant holds by construction. The edges slice is copied.
func NewResult[V comparable](algorithm string, edges []core.Edge[V], vertexCount, inputEdgeCount int, operations int64, elapsed time.Duration) Result[V] {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}
	cp := make([]core.Edge[V], len(edges))
	copy(cp, edges)

	return newResult(algorithm, cp, total, vertexCount, inputEdgeCount, operations, elapsed)
}

// newResult takes ownership of edges.
func newResult[V comparable](algorithm string, edges []core.Edge[V], total int64, vertexCount, inputEdgeCount int, operations int64, elapsed time.Duration) Result[V] {
	if edges == nil {
		edges = []core.Edge[V]{}
	}

	return Result[V]{
		algorithm:      algorithm,
		edges:          edges,
		totalCost:      total,
		vertexCount:    vertexCount,
		inputEdgeCount: inputEdgeCount,
		operations:     operations,
		elapsed:        elapsed,
	}
}

// Algorithm returns the display name of the algorithm that produced r.
func (r Result[V]) Algorithm() string { return r.algorithm }

// Edges returns a copy of the selected edges in selection order.
func (r Result[V]) Edges() []core.Edge[V] {
	out := make([]core.Edge[V], len(r.edges))
	copy(out, r.edges)

	return out
}

// EdgeCount returns len(Edges()) without copying.
func (r Result[V]) EdgeCount() int { return len(r.edges) }

// TotalCost returns the sum of the selected edge weights.
func (r Result[V]) TotalCost() int64 { return r.totalCost }

// VertexCount returns |V| of the input graph.
func (r Result[V]) VertexCount() int { return r.vertexCount }

// InputEdgeCount returns |E| of the input graph.
func (r Result[V]) InputEdgeCount() int { return r.inputEdgeCount }

// Operations returns the abstract operation count (benchmarking only).
func (r Result[V]) Operations() int64 { return r.operations }

// Elapsed returns the wall-clock duration of the run.
func (r Result[V]) Elapsed() time.Duration { return r.elapsed }

// ElapsedMillis returns Elapsed in milliseconds rounded to two decimals.
func (r Result[V]) ElapsedMillis() float64 {
	ms := float64(r.elapsed) / float64(time.Millisecond)

	return math.Round(ms*100) / 100
}

// IsSpanningTree reports whether the edges connect all vertices (|E_T| == |V|-1).
// The empty graph and the single vertex graph are trivially spanned.
func (r Result[V]) IsSpanningTree() bool {
	if r.vertexCount == 0 {
		return true
	}

	return len(r.edges) == r.vertexCount-1
}

// Components returns the number of trees in the selected forest, counting isolated
// vertices. For a single-tree Prim run on a disconnected graph, unreached vertices
// count as their own components.
func (r Result[V]) Components() int {
	return r.vertexCount - len(r.edges)
}

// String renders a multi-line human-readable summary.
func (r Result[V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Algorithm: %s\n", r.algorithm)
	fmt.Fprintf(&sb, "Total Cost: %d\n", r.totalCost)
	fmt.Fprintf(&sb, "MST Edges (%d):\n", len(r.edges))
	for _, e := range r.edges {
		fmt.Fprintf(&sb, "  %v\n", e)
	}
	fmt.Fprintf(&sb, "Operations: %d\n", r.operations)
	fmt.Fprintf(&sb, "Execution Time: %.2f ms\n", r.ElapsedMillis())

	return sb.String()
}
