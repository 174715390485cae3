package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/katalvlaran/mstnet/core"
	"github.com/katalvlaran/mstnet/prim_kruskal"
	"github.com/katalvlaran/mstnet/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pair is A—B (7). With the default canvas A sits at (600,135) and B at (600,765).
func pair(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.MustGraph([]string{"A", "B"})
	require.NoError(t, g.AddEdge("A", "B", 7))

	return g
}

func diamond(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.MustGraph([]string{"A", "B", "C", "D"})
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("B", "D", 5))
	require.NoError(t, g.AddEdge("C", "D", 3))

	return g
}

func decodePNG(t *testing.T, r render.Renderer, s render.Scene) image.Image {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, s))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	return img
}

func rgb(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestNew_Formats(t *testing.T) {
	r, err := render.New("png")
	require.NoError(t, err)
	assert.Equal(t, "png", r.Ext())

	r, err = render.New("DOT")
	require.NoError(t, err)
	assert.Equal(t, "dot", r.Ext())

	for _, f := range []string{"none", ""} {
		r, err = render.New(f)
		require.NoError(t, err)
		assert.Nil(t, r, "format %q", f)
	}

	_, err = render.New("svg")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestWithSize_Panics(t *testing.T) {
	assert.Panics(t, func() { render.WithSize(0, 10) })
	assert.Panics(t, func() { render.WithSize(10, -1) })
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "graph_07.png", render.FileName(7, "png"))
	assert.Equal(t, "graph_123.dot", render.FileName(123, "dot"))
}

func TestRender_NilGraph(t *testing.T) {
	r, _ := render.New("png")
	assert.ErrorIs(t, r.Render(&bytes.Buffer{}, render.Scene{}), render.ErrNilGraph)
	assert.ErrorIs(t, render.DOT{}.Render(&bytes.Buffer{}, render.Scene{}), render.ErrNilGraph)
}

func TestPNG_DefaultCanvas(t *testing.T) {
	r, _ := render.New("png")
	img := decodePNG(t, r, render.Scene{ID: 1, Graph: pair(t)})
	assert.Equal(t, image.Rect(0, 0, 1200, 900), img.Bounds())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgb(img.At(5, 890)))
}

func TestPNG_WithSize(t *testing.T) {
	r, _ := render.New("png", render.WithSize(320, 240))
	img := decodePNG(t, r, render.Scene{ID: 1, Graph: diamond(t)})
	assert.Equal(t, image.Rect(0, 0, 320, 240), img.Bounds())
}

func TestPNG_EdgeColours(t *testing.T) {
	g := pair(t)
	r, _ := render.New("png")

	plain := decodePNG(t, r, render.Scene{ID: 1, Graph: g})
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, rgb(plain.At(600, 300)))

	tree := decodePNG(t, r, render.Scene{ID: 1, Graph: g, Tree: g.Edges()})
	assert.Equal(t, color.RGBA{0, 150, 0, 255}, rgb(tree.At(600, 300)))

	// Node fill, clear of the outline and the label.
	assert.Equal(t, color.RGBA{70, 130, 180, 255}, rgb(tree.At(610, 145)))
}

func TestPNG_EmptyGraph(t *testing.T) {
	r, _ := render.New("png")
	img := decodePNG(t, r, render.Scene{Graph: core.MustGraph[string](nil)})
	assert.Equal(t, 1200, img.Bounds().Dx())
}

func TestDOT_HighlightsTree(t *testing.T) {
	g := diamond(t)
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.DOT{}.Render(&buf, render.Scene{ID: 3, Graph: g, Tree: res.Edges()}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "graph \"graph_03\" {\n"))
	assert.Contains(t, out, `label="Graph #3 - Vertices: 4, Edges: 5\nMST Cost: 6, MST Edges: 3";`)
	assert.Equal(t, 3, strings.Count(out, "penwidth=3"))
	assert.Equal(t, 2, strings.Count(out, "color=gray"))
	assert.Contains(t, out, `"A" -- "B" [label="1", color=forestgreen,penwidth=3];`)
	assert.Contains(t, out, `"B" -- "D" [label="5", color=gray];`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestDOT_ParallelEdgesBySeq(t *testing.T) {
	g := core.MustGraph([]string{"A", "B"})
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("A", "B", 2))
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.DOT{}.Render(&buf, render.Scene{ID: 1, Graph: g, Tree: res.Edges()}))
	assert.Contains(t, buf.String(), `"A" -- "B" [label="2", color=forestgreen,penwidth=3];`)
	assert.Contains(t, buf.String(), `"A" -- "B" [label="5", color=gray];`)
}

func TestDOT_NoTreeNoCostLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.DOT{}.Render(&buf, render.Scene{ID: 2, Graph: pair(t)}))
	assert.NotContains(t, buf.String(), "MST Cost")
	assert.NotContains(t, buf.String(), "penwidth")
}
