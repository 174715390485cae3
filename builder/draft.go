// SPDX-License-Identifier: MIT
// Package: mstnet/builder
//
// draft.go — the mutable staging area constructors write into.
//
// core.Graph fixes its vertex set at construction, so constructors first collect
// vertices and edges here; BuildInput then freezes the draft into a
// converters.GraphInput (and BuildGraph into a core.Graph).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstnet/converters"
	"github.com/katalvlaran/mstnet/core"
)

// pairKey is an unordered vertex pair with a <= b by insertion index.
type pairKey struct{ a, b int }

// draft accumulates vertices in first-seen order and edges in emission order.
type draft struct {
	nodes []string
	index map[string]int
	edges []converters.EdgeInput
	pairs map[pairKey]int // multiplicity of each unordered pair
}

func newDraft() *draft {
	return &draft{
		index: make(map[string]int),
		pairs: make(map[pairKey]int),
	}
}

// addVertex inserts id if absent and returns its index. Re-adding is a no-op, so
// constructors composed over the same ID scheme share vertices.
// Complexity: O(1).
func (d *draft) addVertex(id string) int {
	if i, ok := d.index[id]; ok {
		return i
	}
	d.index[id] = len(d.nodes)
	d.nodes = append(d.nodes, id)

	return len(d.nodes) - 1
}

// addVertices inserts cfg.idFn(0..n-1) and returns their IDs.
func (d *draft) addVertices(n int, idFn IDFn) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		d.addVertex(ids[i])
	}

	return ids
}

// addEdge appends {u,v,w}; both endpoints must already exist.
func (d *draft) addEdge(u, v string, w int64) error {
	iu, ok := d.index[u]
	if !ok {
		return fmt.Errorf("addEdge(%s,%s): unknown vertex %s: %w", u, v, u, core.ErrInvalidVertex)
	}
	iv, ok := d.index[v]
	if !ok {
		return fmt.Errorf("addEdge(%s,%s): unknown vertex %s: %w", u, v, v, core.ErrInvalidVertex)
	}
	d.edges = append(d.edges, converters.EdgeInput{From: u, To: v, Weight: w})
	d.pairs[makePair(iu, iv)]++

	return nil
}

// hasPair reports whether any edge joins u and v, in either orientation.
func (d *draft) hasPair(u, v string) bool {
	iu, okU := d.index[u]
	iv, okV := d.index[v]

	return okU && okV && d.pairs[makePair(iu, iv)] > 0
}

// input freezes the draft under the given graph id. Slices are copied.
func (d *draft) input(id int) converters.GraphInput {
	gi := converters.GraphInput{
		ID:    id,
		Nodes: make([]string, len(d.nodes)),
		Edges: make([]converters.EdgeInput, len(d.edges)),
	}
	copy(gi.Nodes, d.nodes)
	copy(gi.Edges, d.edges)

	return gi
}

func makePair(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{a, b}
}
