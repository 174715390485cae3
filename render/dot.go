package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// DOT renders Graphviz source. Tree edges get color=forestgreen,penwidth=3; all other
// edges are grey. Edges are emitted in insertion order.
type DOT struct{}

// Ext implements Renderer.
func (DOT) Ext() string { return FormatDOT }

// Render implements Renderer.
func (DOT) Render(w io.Writer, s Scene) error {
	if s.Graph == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	title, cost := titleLines(s)
	label := title
	if cost != "" {
		label += "\n" + cost
	}

	fmt.Fprintf(bw, "graph %s {\n", strconv.Quote(fmt.Sprintf("graph_%02d", s.ID)))
	fmt.Fprintf(bw, "  label=%s;\n  labelloc=t;\n", strconv.Quote(label))
	fmt.Fprintf(bw, "  node [shape=circle, style=filled, fillcolor=steelblue, fontcolor=white];\n")
	for _, v := range s.Graph.Vertices() {
		fmt.Fprintf(bw, "  %s;\n", strconv.Quote(v))
	}

	inTree := treeSeqs(s.Tree)
	for _, e := range s.Graph.Edges() {
		attrs := "color=gray"
		if inTree[e.Seq] {
			attrs = "color=forestgreen,penwidth=3"
		}
		fmt.Fprintf(bw, "  %s -- %s [label=\"%d\", %s];\n", strconv.Quote(e.From), strconv.Quote(e.To), e.Weight, attrs)
	}
	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("DOT.Render(%d): %w", s.ID, err)
	}

	return nil
}
