package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstnet/converters"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	root := a.root()
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.ExecuteContext(context.Background())
	a.close()

	return stdout.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mstnet dev\n", out)
}

func TestGenerateThenRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	res := filepath.Join(dir, "results.json")
	viz := filepath.Join(dir, "viz")
	prom := filepath.Join(dir, "mstnet.prom")

	out, err := execute(t, "generate", "--seed", "3", "-o", in)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 28 graphs")

	out, err = execute(t, "run", "-i", in, "-o", res, "--render", "dot", "--output-dir", viz, "--metrics-file", prom, "-w", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Graphs:        28 (28 connected, 0 cost mismatches)")

	doc, err := converters.ReadResultsFile(res)
	require.NoError(t, err)
	require.Len(t, doc.Results, 28)
	assert.NotEmpty(t, doc.RunID)
	for i, r := range doc.Results {
		assert.Equal(t, i+1, r.GraphID)
		assert.True(t, r.CostMatch)
		assert.Equal(t, r.Prim.TotalCost, r.Kruskal.TotalCost)
		assert.Len(t, r.Prim.MSTEdges, r.InputStats.Vertices-1)
	}

	_, err = os.Stat(filepath.Join(viz, "graph_01.dot"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(viz, "graph_28.dot"))
	assert.NoError(t, err)

	metrics, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "mstnet_graphs_processed_total 28")
}

func TestRun_Print(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	doc := []converters.GraphInput{{
		ID:    1,
		Nodes: []string{"A", "B", "C"},
		Edges: []converters.EdgeInput{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2}, {From: "A", To: "C", Weight: 5}},
	}}
	require.NoError(t, converters.WriteInputsFile(in, doc))

	out, err := execute(t, "run", "-i", in, "-o", filepath.Join(dir, "r.json"), "--render", "none", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "Graph #1\n  Vertices: 3\n  Edges: 3\n  Connected: true\n")
	assert.Contains(t, out, "Algorithm: Prim's Algorithm")
	assert.Contains(t, out, "Algorithm: Kruskal's Algorithm")
	assert.Contains(t, out, "Total Cost: 3")
	assert.Contains(t, out, "Cost Match: ✓")
	assert.NotContains(t, out, "Pictures:")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "run", "-i", filepath.Join(dir, "missing.json"), "--render", "none")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "run", "--render", "svg")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "render"))

	_, err = execute(t, "run", "-w", "0")
	assert.Error(t, err)
}

func TestConfigFileAndInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mstnet.yaml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	_, err = execute(t, "config", "init", path)
	assert.ErrorIs(t, err, os.ErrExist)
	_, err = execute(t, "config", "init", path, "--force")
	assert.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: chatty\n"), 0o644))
	_, err = execute(t, "--config", path, "version")
	assert.Error(t, err)
}
