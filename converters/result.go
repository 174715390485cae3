package converters

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/mstnet/core"
	"github.com/katalvlaran/mstnet/prim_kruskal"
)

// ResultDocument is the top-level results object.
type ResultDocument struct {
	RunID   string        `json:"run_id,omitempty"`
	Results []GraphResult `json:"results"`
}

// GraphResult pairs the Prim and Kruskal outcomes for one input graph.
type GraphResult struct {
	GraphID    int             `json:"graph_id"`
	InputStats InputStats      `json:"input_stats"`
	Connected  bool            `json:"connected"`
	CostMatch  bool            `json:"cost_match"`
	Prim       AlgorithmRecord `json:"prim"`
	Kruskal    AlgorithmRecord `json:"kruskal"`
}

// InputStats echoes the size of the input graph.
type InputStats struct {
	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
}

// AlgorithmRecord is the wire form of a prim_kruskal.Result.
type AlgorithmRecord struct {
	MSTEdges        []EdgeInput `json:"mst_edges"`
	TotalCost       int64       `json:"total_cost"`
	OperationsCount int64       `json:"operations_count"`
	ExecutionTimeMs float64     `json:"execution_time_ms"`
}

// NewAlgorithmRecord converts r, keeping edges in selection order.
func NewAlgorithmRecord(r prim_kruskal.Result[string]) AlgorithmRecord {
	edges := r.Edges()
	rec := AlgorithmRecord{
		MSTEdges:        make([]EdgeInput, len(edges)),
		TotalCost:       r.TotalCost(),
		OperationsCount: r.Operations(),
		ExecutionTimeMs: r.ElapsedMillis(),
	}
	for i, e := range edges {
		rec.MSTEdges[i] = EdgeInput{From: e.From, To: e.To, Weight: e.Weight}
	}

	return rec
}

// NewGraphResult builds the record for graph id from both algorithm results.
func NewGraphResult(id int, g *core.Graph[string], prim, kruskal prim_kruskal.Result[string]) GraphResult {
	return GraphResult{
		GraphID:    id,
		InputStats: InputStats{Vertices: g.VertexCount(), Edges: g.EdgeCount()},
		Connected:  g.IsConnected(),
		CostMatch:  prim_kruskal.Compare(prim, kruskal).CostMatch,
		Prim:       NewAlgorithmRecord(prim),
		Kruskal:    NewAlgorithmRecord(kruskal),
	}
}

// WriteResults encodes doc indented.
func WriteResults(w io.Writer, doc ResultDocument) error {
	if doc.Results == nil {
		doc.Results = []GraphResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteResults: %w", err)
	}

	return nil
}

// ReadResults decodes a results document.
func ReadResults(r io.Reader) (ResultDocument, error) {
	var doc ResultDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return ResultDocument{}, fmt.Errorf("ReadResults: %w: %w", ErrMalformedDocument, err)
	}
	if doc.Results == nil {
		return ResultDocument{}, fmt.Errorf("ReadResults: missing \"results\": %w", ErrMalformedDocument)
	}

	return doc, nil
}

// WriteResultsFile creates or truncates path and calls WriteResults.
func WriteResultsFile(path string, doc ResultDocument) error {
	return writeFile(path, func(w io.Writer) error { return WriteResults(w, doc) })
}

// ReadResultsFile opens path and calls ReadResults.
func ReadResultsFile(path string) (ResultDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return ResultDocument{}, fmt.Errorf("ReadResultsFile(%s): %w", path, err)
	}
	defer f.Close()

	doc, err := ReadResults(f)
	if err != nil {
		return ResultDocument{}, fmt.Errorf("ReadResultsFile(%s): %w", path, err)
	}

	return doc, nil
}
