package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mstnet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsConnected_Cases covers empty, single, connected and split graphs.
func TestIsConnected_Cases(t *testing.T) {
	empty := core.MustGraph[string](nil)
	assert.True(t, empty.IsConnected(), "zero vertices is connected by definition")

	single := core.MustGraph([]string{VertexA})
	assert.True(t, single.IsConnected())

	pair := core.MustGraph([]string{VertexA, VertexB})
	assert.False(t, pair.IsConnected(), "two isolated vertices")

	assert.True(t, newDiamond(t).IsConnected())
	assert.False(t, newTwoIslands(t).IsConnected())
}

// TestIsConnected_LoopOnly verifies a self-loop does not connect anything.
func TestIsConnected_LoopOnly(t *testing.T) {
	g := core.MustGraph([]string{VertexA, VertexB})
	require.NoError(t, g.AddEdge(VertexA, VertexA, Weight1))
	assert.False(t, g.IsConnected())
}

// TestComponents_Order verifies components follow first-vertex insertion order.
func TestComponents_Order(t *testing.T) {
	comps := newTwoIslands(t).Components()
	require.Len(t, comps, 2)
	assert.ElementsMatch(t, []string{VertexA, VertexB, VertexC}, comps[0])
	assert.ElementsMatch(t, []string{VertexD, VertexE}, comps[1])
	assert.Equal(t, VertexA, comps[0][0])
	assert.Equal(t, VertexD, comps[1][0])
}

// TestIsConnected_LongPath guards the explicit-stack traversal on a deep path.
func TestIsConnected_LongPath(t *testing.T) {
	const n = 50000
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("V%d", i)
	}
	g := core.MustGraph(ids)
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(ids[i-1], ids[i], int64(i)))
	}
	assert.True(t, g.IsConnected())
	assert.Len(t, g.Components(), 1)
}
