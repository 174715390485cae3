// Package core defines the central Graph, Edge and Neighbor types used by every
// MST algorithm in this module, and provides read-safe primitives for building
// and querying weighted, undirected, vertex-labeled graphs.
//
// This file declares Edge, Neighbor, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrInvalidVertex   - an edge endpoint is not a known vertex.
//	ErrDuplicateVertex - the same label appears twice in the vertex list.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates that AddEdge referenced a vertex label that was not
	// supplied to NewGraph. It is raised synchronously and never recovered internally.
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrDuplicateVertex indicates that NewGraph received the same label twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")
)

// Edge represents one undirected, weighted connection in the canonical edge list.
//
// From and To are stored in the order the caller supplied them, but the edge itself
// is unordered: {A,B,w} and {B,A,w} describe the same connection (see Equal).
// Seq is the 0-based position of the edge in the canonical list; it is the
// deterministic secondary key whenever two weights tie.
type Edge[V comparable] struct {
	// From is the first endpoint as supplied to AddEdge.
	From V

	// To is the second endpoint as supplied to AddEdge.
	To V

	// Weight is the cost of the connection.
	Weight int64

	// Seq is the insertion sequence number in the canonical edge list.
	Seq int
}

// Equal reports whether e and other join the same unordered endpoint pair with the
// same weight. Seq is ignored: two parallel edges of equal weight are Equal.
// Complexity: O(1).
func (e Edge[V]) Equal(other Edge[V]) bool {
	if e.Weight != other.Weight {
		return false
	}

	return (e.From == other.From && e.To == other.To) ||
		(e.From == other.To && e.To == other.From)
}

// Other returns the endpoint opposite to v. For a self-loop both endpoints are v.
// The boolean is false if v is not an endpoint of e.
func (e Edge[V]) Other(v V) (V, bool) {
	switch v {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		var zero V
		return zero, false
	}
}

// String renders the edge as "From-To(Weight)".
func (e Edge[V]) String() string {
	return fmt.Sprintf("%v-%v(%d)", e.From, e.To, e.Weight)
}

// Neighbor is one adjacency entry: the endpoint reached from the owning vertex,
// the connecting weight, and the Seq of the canonical edge it mirrors.
type Neighbor[V comparable] struct {
	// To is the opposite endpoint.
	To V

	// Weight is the weight of the underlying canonical edge.
	Weight int64

	// Seq identifies the canonical edge (Edge.Seq).
	Seq int
}

// Graph is the in-memory, undirected, weighted graph consumed by the MST algorithms.
//
// Vertices are fixed at construction and kept in insertion order; edges are appended
// with AddEdge. For every canonical edge {a,b,w} the adjacency of a holds (b,w) and the
// adjacency of b holds (a,w), exactly once each. A self-loop therefore appears twice in
// its vertex's adjacency.
//
// mu guards vertices, index, adjacency and edges. Once populated, a Graph may be read
// concurrently by any number of algorithms; AddEdge takes the write lock.
type Graph[V comparable] struct {
	mu sync.RWMutex

	// vertices holds labels in insertion order.
	vertices []V

	// index maps a label to its position in vertices and adjacency.
	index map[V]int

	// adjacency[i] lists the neighbors of vertices[i] in edge insertion order.
	adjacency [][]Neighbor[V]

	// edges is the canonical edge list; edges[i].Seq == i.
	edges []Edge[V]
}

// NewGraph creates a Graph over the given vertex labels with empty adjacency.
//
// Steps:
//  1. Allocate vertex slice, index map and adjacency buckets sized to len(vertices).
//  2. Register each label in order; a repeated label fails with ErrDuplicateVertex.
//
// Complexity: O(V) time and memory.
func NewGraph[V comparable](vertices []V) (*Graph[V], error) {
	g := &Graph[V]{
		vertices:  make([]V, 0, len(vertices)),
		index:     make(map[V]int, len(vertices)),
		adjacency: make([][]Neighbor[V], 0, len(vertices)),
	}

	for _, v := range vertices {
		if _, dup := g.index[v]; dup {
			return nil, fmt.Errorf("NewGraph(%v): %w", v, ErrDuplicateVertex)
		}
		g.index[v] = len(g.vertices)
		g.vertices = append(g.vertices, v)
		g.adjacency = append(g.adjacency, nil)
	}

	return g, nil
}

// MustGraph is like NewGraph but panics on a duplicate label.
// Intended for fixtures and examples with literal vertex lists.
func MustGraph[V comparable](vertices []V) *Graph[V] {
	g, err := NewGraph(vertices)
	if err != nil {
		panic(err)
	}

	return g
}
