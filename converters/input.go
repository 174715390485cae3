package converters

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/mstnet/core"
)

// ErrMalformedDocument indicates a JSON document that does not match the expected shape.
var ErrMalformedDocument = errors.New("converters: malformed document")

// InputDocument is the top-level input object.
type InputDocument struct {
	Graphs []GraphInput `json:"graphs"`
}

// GraphInput is one graph as it appears on the wire: an id, the vertex labels in order,
// and the edge list in insertion order.
type GraphInput struct {
	ID    int         `json:"id"`
	Nodes []string    `json:"nodes"`
	Edges []EdgeInput `json:"edges"`
}

// EdgeInput is one undirected weighted edge on the wire.
type EdgeInput struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// Graph materialises gi as a core.Graph, preserving node and edge order.
// Fails with core.ErrDuplicateVertex or core.ErrInvalidVertex, wrapped with the graph id.
// Complexity: O(V + E).
func (gi GraphInput) Graph() (*core.Graph[string], error) {
	g, err := core.NewGraph(gi.Nodes)
	if err != nil {
		return nil, fmt.Errorf("graph %d: %w", gi.ID, err)
	}
	for _, e := range gi.Edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graph %d: %w", gi.ID, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a GraphInput with the given id.
func FromGraph(id int, g *core.Graph[string]) GraphInput {
	edges := g.Edges()
	gi := GraphInput{
		ID:    id,
		Nodes: g.Vertices(),
		Edges: make([]EdgeInput, len(edges)),
	}
	for i, e := range edges {
		gi.Edges[i] = EdgeInput{From: e.From, To: e.To, Weight: e.Weight}
	}

	return gi
}

// ReadInputs decodes an input document from r.
func ReadInputs(r io.Reader) ([]GraphInput, error) {
	var doc InputDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("ReadInputs: %w: %w", ErrMalformedDocument, err)
	}
	if doc.Graphs == nil {
		return nil, fmt.Errorf("ReadInputs: missing \"graphs\": %w", ErrMalformedDocument)
	}

	return doc.Graphs, nil
}

// WriteInputs encodes graphs as an indented input document.
func WriteInputs(w io.Writer, graphs []GraphInput) error {
	if graphs == nil {
		graphs = []GraphInput{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(InputDocument{Graphs: graphs}); err != nil {
		return fmt.Errorf("WriteInputs: %w", err)
	}

	return nil
}

// ReadInputsFile opens path and calls ReadInputs.
func ReadInputsFile(path string) ([]GraphInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadInputsFile(%s): %w", path, err)
	}
	defer f.Close()

	graphs, err := ReadInputs(f)
	if err != nil {
		return nil, fmt.Errorf("ReadInputsFile(%s): %w", path, err)
	}

	return graphs, nil
}

// WriteInputsFile creates or truncates path and calls WriteInputs.
func WriteInputsFile(path string, graphs []GraphInput) error {
	return writeFile(path, func(w io.Writer) error { return WriteInputs(w, graphs) })
}

// writeFile creates path, runs write and reports the first of the write or close errors.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return write(f)
}
