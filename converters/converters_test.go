package converters_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/mstnet/converters"
	"github.com/katalvlaran/mstnet/core"
	"github.com/katalvlaran/mstnet/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `{
  "graphs": [
    {
      "id": 1,
      "nodes": ["A", "B", "C", "D"],
      "edges": [
        {"from": "A", "to": "B", "weight": 1},
        {"from": "A", "to": "C", "weight": 4},
        {"from": "B", "to": "C", "weight": 2},
        {"from": "B", "to": "D", "weight": 5},
        {"from": "C", "to": "D", "weight": 3}
      ]
    },
    {"id": 2, "nodes": ["X"], "edges": []}
  ]
}`

// TestReadInputs_Graph decodes the sample and materialises both graphs.
func TestReadInputs_Graph(t *testing.T) {
	graphs, err := converters.ReadInputs(strings.NewReader(sampleInput))
	require.NoError(t, err)
	require.Len(t, graphs, 2)

	g, err := graphs[0].Graph()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, core.Edge[string]{From: "B", To: "D", Weight: 5, Seq: 3}, g.Edges()[3])

	single, err := graphs[1].Graph()
	require.NoError(t, err)
	assert.Equal(t, 1, single.VertexCount())
	assert.Zero(t, single.EdgeCount())
}

// TestReadInputs_Malformed covers syntax errors, unknown fields and a missing array.
func TestReadInputs_Malformed(t *testing.T) {
	for name, doc := range map[string]string{
		"syntax":        `{"graphs": [`,
		"unknown field": `{"graphs": [], "extra": 1}`,
		"missing":       `{}`,
		"wrong type":    `{"graphs": [{"id": "one"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := converters.ReadInputs(strings.NewReader(doc))
			assert.ErrorIs(t, err, converters.ErrMalformedDocument)
		})
	}

	graphs, err := converters.ReadInputs(strings.NewReader(`{"graphs": []}`))
	require.NoError(t, err)
	assert.Empty(t, graphs)
}

// TestGraph_InvalidEdge verifies an edge naming an undeclared node fails with the core
// sentinel and the graph id in context.
func TestGraph_InvalidEdge(t *testing.T) {
	gi := converters.GraphInput{
		ID:    7,
		Nodes: []string{"A", "B"},
		Edges: []converters.EdgeInput{{From: "A", To: "Z", Weight: 1}},
	}
	_, err := gi.Graph()
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
	assert.Contains(t, err.Error(), "graph 7")

	gi = converters.GraphInput{ID: 8, Nodes: []string{"A", "A"}}
	_, err = gi.Graph()
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
}

// TestInputs_RoundTrip writes and reads an input document through a file.
func TestInputs_RoundTrip(t *testing.T) {
	graphs, err := converters.ReadInputs(strings.NewReader(sampleInput))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, converters.WriteInputsFile(path, graphs))
	back, err := converters.ReadInputsFile(path)
	require.NoError(t, err)

	if diff := cmp.Diff(graphs, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	_, err = converters.ReadInputsFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

// TestFromGraph captures a core.Graph in insertion order.
func TestFromGraph(t *testing.T) {
	g := core.MustGraph([]string{"B", "A"})
	require.NoError(t, g.AddEdge("B", "A", 9))

	gi := converters.FromGraph(3, g)
	assert.Equal(t, converters.GraphInput{
		ID:    3,
		Nodes: []string{"B", "A"},
		Edges: []converters.EdgeInput{{From: "B", To: "A", Weight: 9}},
	}, gi)
}

// TestResults_Document checks the record shape, the JSON field names and the round trip.
func TestResults_Document(t *testing.T) {
	graphs, err := converters.ReadInputs(strings.NewReader(sampleInput))
	require.NoError(t, err)
	g, err := graphs[0].Graph()
	require.NoError(t, err)

	var tick time.Duration
	clock := func() time.Time {
		tick += 1234567 * time.Nanosecond
		return time.Unix(0, 0).Add(tick)
	}
	prim, kruskal, _, err := prim_kruskal.CrossCheck(g, prim_kruskal.WithClock(clock))
	require.NoError(t, err)

	rec := converters.NewGraphResult(1, g, prim, kruskal)
	assert.Equal(t, converters.InputStats{Vertices: 4, Edges: 5}, rec.InputStats)
	assert.True(t, rec.Connected)
	assert.True(t, rec.CostMatch)
	assert.Equal(t, int64(6), rec.Prim.TotalCost)
	assert.Equal(t, int64(21), rec.Kruskal.OperationsCount)
	assert.Equal(t, 1.23, rec.Kruskal.ExecutionTimeMs)
	assert.Equal(t, []converters.EdgeInput{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "C", To: "D", Weight: 3},
	}, rec.Kruskal.MSTEdges)

	doc := converters.ResultDocument{RunID: "run-1", Results: []converters.GraphResult{rec}}
	var buf bytes.Buffer
	require.NoError(t, converters.WriteResults(&buf, doc))
	for _, field := range []string{
		`"run_id": "run-1"`, `"graph_id": 1`, `"input_stats"`, `"cost_match": true`,
		`"mst_edges"`, `"total_cost": 6`, `"operations_count": 21`, `"execution_time_ms": 1.23`,
	} {
		assert.Contains(t, buf.String(), field)
	}

	back, err := converters.ReadResults(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(doc, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestResults_EmptyAndMalformed covers the empty document and decode failures.
func TestResults_EmptyAndMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, converters.WriteResultsFile(path, converters.ResultDocument{}))
	doc, err := converters.ReadResultsFile(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Results)
	assert.Empty(t, doc.RunID)

	_, err = converters.ReadResults(strings.NewReader(`{"run_id": "x"}`))
	assert.ErrorIs(t, err, converters.ErrMalformedDocument)
}

// TestNewAlgorithmRecord_Empty verifies the empty tree encodes as [] not null.
func TestNewAlgorithmRecord_Empty(t *testing.T) {
	res, err := prim_kruskal.Kruskal(core.MustGraph([]string{"A"}))
	require.NoError(t, err)

	var buf bytes.Buffer
	doc := converters.ResultDocument{Results: []converters.GraphResult{{Kruskal: converters.NewAlgorithmRecord(res)}}}
	require.NoError(t, converters.WriteResults(&buf, doc))
	assert.Contains(t, buf.String(), `"mst_edges": []`)
}
