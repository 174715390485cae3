// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for mstnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Avoid magic literals in test bodies.

package core_test

import (
	"testing"

	"github.com/katalvlaran/mstnet/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight4 = 4
	Weight5 = 5
)

// Common concurrency sizes used across core tests.
const (
	NReaders = 50
	NLoops   = 100
)

// newDiamond builds the four-vertex fixture
//
//	A-B:1, A-C:4, B-C:2, B-D:5, C-D:3
//
// whose unique MST is {A-B, B-C, C-D} with cost 6.
func newDiamond(t *testing.T) *core.Graph[string] {
	t.Helper()
	g, err := core.NewGraph([]string{VertexA, VertexB, VertexC, VertexD})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
	require.NoError(t, g.AddEdge(VertexA, VertexC, Weight4))
	require.NoError(t, g.AddEdge(VertexB, VertexC, Weight2))
	require.NoError(t, g.AddEdge(VertexB, VertexD, Weight5))
	require.NoError(t, g.AddEdge(VertexC, VertexD, Weight3))

	return g
}

// newTwoIslands builds {A,B,C} and {D,E} with no path between them:
//
//	A-B:1, B-C:2, D-E:3
func newTwoIslands(t *testing.T) *core.Graph[string] {
	t.Helper()
	g, err := core.NewGraph([]string{VertexA, VertexB, VertexC, VertexD, VertexE})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
	require.NoError(t, g.AddEdge(VertexB, VertexC, Weight2))
	require.NoError(t, g.AddEdge(VertexD, VertexE, Weight3))

	return g
}

// countEntries returns how many adjacency entries of from point at to with weight w.
func countEntries(g *core.Graph[string], from, to string, w int64) int {
	n := 0
	for _, nb := range g.Neighbors(from) {
		if nb.To == to && nb.Weight == w {
			n++
		}
	}

	return n
}
