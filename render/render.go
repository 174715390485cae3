// Package render draws a graph with its spanning tree highlighted.
//
// Two formats are provided behind the Renderer interface: PNG (circle layout, tree
// edges thick green, other edges thin grey, weights at edge midpoints) and Graphviz
// DOT. Renderers only read the graph; a Scene may be rendered concurrently by several
// goroutines.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mstnet/core"
)

// ErrUnknownFormat indicates New received a format it does not know.
var ErrUnknownFormat = errors.New("render: unknown format")

// ErrNilGraph indicates a Scene without a graph.
var ErrNilGraph = errors.New("render: scene has no graph")

// Format names accepted by New.
const (
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatNone = "none"
)

// Scene is one picture: the graph, its id for titles and file names, and the
// selected tree edges. A nil Tree draws the graph without highlighting and
// without the cost line.
type Scene struct {
	ID    int
	Graph *core.Graph[string]
	Tree  []core.Edge[string]
}

// Renderer writes a Scene in one output format.
type Renderer interface {
	Render(w io.Writer, s Scene) error
	// Ext is the file extension without the dot.
	Ext() string
}

// New returns the renderer for format ("png", "dot"). "none" and "" return a nil
// Renderer and no error, meaning rendering is disabled.
func New(format string, opts ...Option) (Renderer, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch strings.ToLower(format) {
	case FormatPNG:
		return &PNG{Width: cfg.width, Height: cfg.height}, nil
	case FormatDOT:
		return DOT{}, nil
	case FormatNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("New(%q): %w", format, ErrUnknownFormat)
	}
}

// FileName returns the conventional output name for graph id, e.g. "graph_07.png".
func FileName(id int, ext string) string {
	return fmt.Sprintf("graph_%02d.%s", id, ext)
}

// Option configures New.
type Option func(*options)

type options struct {
	width, height int
}

// Default PNG canvas.
const (
	DefaultWidth  = 1200
	DefaultHeight = 900
)

func defaultOptions() options {
	return options{width: DefaultWidth, height: DefaultHeight}
}

// WithSize sets the PNG canvas size. Panics on non-positive dimensions.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: WithSize(%d, %d)", width, height))
	}
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// treeSeqs indexes the tree by canonical edge Seq, so parallel edges are told apart.
func treeSeqs(tree []core.Edge[string]) map[int]bool {
	set := make(map[int]bool, len(tree))
	for _, e := range tree {
		set[e.Seq] = true
	}

	return set
}

// titleLines returns the heading and, when a tree is present, the cost line.
func titleLines(s Scene) (title, cost string) {
	title = fmt.Sprintf("Graph #%d - Vertices: %d, Edges: %d", s.ID, s.Graph.VertexCount(), s.Graph.EdgeCount())
	if s.Tree != nil {
		var total int64
		for _, e := range s.Tree {
			total += e.Weight
		}
		cost = fmt.Sprintf("MST Cost: %d, MST Edges: %d", total, len(s.Tree))
	}

	return title, cost
}
