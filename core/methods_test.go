package core_test

import (
	"testing"

	"github.com/katalvlaran/mstnet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGraph_DuplicateVertex ensures repeated labels are rejected at construction.
func TestNewGraph_DuplicateVertex(t *testing.T) {
	g, err := core.NewGraph([]string{VertexA, VertexB, VertexA})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
}

// TestNewGraph_Empty verifies the zero-vertex graph is valid and empty.
func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph[string](nil)
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())
}

// TestVertices_InsertionOrder verifies Vertices preserves the NewGraph order and returns a copy.
func TestVertices_InsertionOrder(t *testing.T) {
	g := core.MustGraph([]string{VertexD, VertexA, VertexC})
	got := g.Vertices()
	assert.Equal(t, []string{VertexD, VertexA, VertexC}, got)

	got[0] = VertexX // mutate the copy
	assert.Equal(t, VertexD, g.Vertices()[0], "Vertices must return a copy")
}

// TestAddEdge_InvalidVertex ensures unknown endpoints fail with ErrInvalidVertex and
// leave the graph untouched.
func TestAddEdge_InvalidVertex(t *testing.T) {
	g := core.MustGraph([]string{VertexA, VertexB})

	assert.ErrorIs(t, g.AddEdge(VertexA, VertexX, Weight1), core.ErrInvalidVertex)
	assert.ErrorIs(t, g.AddEdge(VertexX, VertexA, Weight1), core.ErrInvalidVertex)
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Neighbors(VertexA))
}

// TestAddEdge_Symmetric checks that each canonical edge appears once in each direction.
func TestAddEdge_Symmetric(t *testing.T) {
	g := newDiamond(t)

	require.Equal(t, 5, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.Equal(t, 1, countEntries(g, e.From, e.To, e.Weight), "missing %v forward", e)
		assert.Equal(t, 1, countEntries(g, e.To, e.From, e.Weight), "missing %v mirror", e)
	}
}

// TestAddEdge_SeqAndOrder verifies Edge.Seq equals the insertion position.
func TestAddEdge_SeqAndOrder(t *testing.T) {
	g := newDiamond(t)
	for i, e := range g.Edges() {
		assert.Equal(t, i, e.Seq)
	}
	nbs := g.Neighbors(VertexB)
	require.Len(t, nbs, 3)
	assert.Equal(t, []string{VertexA, VertexC, VertexD}, []string{nbs[0].To, nbs[1].To, nbs[2].To})
}

// TestAddEdge_LoopsAndParallels ensures self-loops and parallel edges are stored as given.
func TestAddEdge_LoopsAndParallels(t *testing.T) {
	g := core.MustGraph([]string{VertexA, VertexB})
	require.NoError(t, g.AddEdge(VertexA, VertexA, Weight1))
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight2))
	require.NoError(t, g.AddEdge(VertexB, VertexA, Weight2))

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 4, g.Degree(VertexA), "loop counts twice plus two parallels")
	assert.Equal(t, 2, g.Degree(VertexB))

	st := g.Stats()
	assert.Equal(t, 1, st.SelfLoops)
	assert.Equal(t, 1, st.ParallelEdges)
	assert.EqualValues(t, Weight1, st.MinWeight)
	assert.EqualValues(t, Weight2, st.MaxWeight)
	assert.EqualValues(t, Weight1+2*Weight2, st.TotalWeight)
}

// TestNeighbors_UnknownOrIsolated verifies the no-error empty result.
func TestNeighbors_UnknownOrIsolated(t *testing.T) {
	g := core.MustGraph([]string{VertexA, VertexB})
	assert.NotNil(t, g.Neighbors(VertexX))
	assert.Empty(t, g.Neighbors(VertexX))
	assert.Empty(t, g.Neighbors(VertexA))
	assert.Zero(t, g.Degree(VertexX))
}

// TestForEachNeighbor_EarlyStop verifies the callback can stop iteration.
func TestForEachNeighbor_EarlyStop(t *testing.T) {
	g := newDiamond(t)
	var seen []string
	g.ForEachNeighbor(VertexB, func(nb core.Neighbor[string]) bool {
		seen = append(seen, nb.To)
		return len(seen) < 2
	})
	assert.Equal(t, []string{VertexA, VertexC}, seen)
}

// TestHasEdge checks both orientations and unknown vertices.
func TestHasEdge(t *testing.T) {
	g := newDiamond(t)
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))
	assert.False(t, g.HasEdge(VertexA, VertexD))
	assert.False(t, g.HasEdge(VertexX, VertexA))
}

// TestEdge_Equal covers the unordered-pair equality rule.
func TestEdge_Equal(t *testing.T) {
	ab := core.Edge[string]{From: VertexA, To: VertexB, Weight: Weight1, Seq: 0}
	ba := core.Edge[string]{From: VertexB, To: VertexA, Weight: Weight1, Seq: 7}
	abHeavy := core.Edge[string]{From: VertexA, To: VertexB, Weight: Weight2}
	ac := core.Edge[string]{From: VertexA, To: VertexC, Weight: Weight1}

	assert.True(t, ab.Equal(ba))
	assert.False(t, ab.Equal(abHeavy))
	assert.False(t, ab.Equal(ac))

	other, ok := ab.Other(VertexB)
	assert.True(t, ok)
	assert.Equal(t, VertexA, other)
	_, ok = ab.Other(VertexC)
	assert.False(t, ok)
	assert.Equal(t, "A-B(1)", ab.String())
}

// TestGraph_IntLabels exercises the generic label path with integer indices.
func TestGraph_IntLabels(t *testing.T) {
	g := core.MustGraph([]int{0, 1, 2})
	require.NoError(t, g.AddEdge(0, 1, 7))
	require.NoError(t, g.AddEdge(1, 2, 3))
	assert.ErrorIs(t, g.AddEdge(2, 3, 1), core.ErrInvalidVertex)
	assert.True(t, g.IsConnected())
	assert.Equal(t, "Graph{vertices=3, edges=2}", g.String())
}
