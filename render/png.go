package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Palette and geometry of the PNG renderer.
var (
	colorTreeEdge   = color.RGBA{R: 0, G: 150, B: 0, A: 255}
	colorTreeLabel  = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	colorOtherEdge  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorOtherLabel = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorNode       = color.RGBA{R: 70, G: 130, B: 180, A: 255} // steel blue
)

const (
	treeEdgeWidth  = 4
	otherEdgeWidth = 2
	nodeRadius     = 25
	outlineWidth   = 2
	layoutRadius   = 0.35 // fraction of min(width, height)
	circleSegments = 64
)

// PNG renders a raster image: vertices on a circle starting at 12 o'clock in
// insertion order, edges underneath, then nodes, then the title block and legend.
type PNG struct {
	Width, Height int
}

// Ext implements Renderer.
func (*PNG) Ext() string { return FormatPNG }

// Render implements Renderer.
func (p *PNG) Render(w io.Writer, s Scene) error {
	if s.Graph == nil {
		return ErrNilGraph
	}
	width, height := p.Width, p.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	c := &canvas{img: img, z: vector.NewRasterizer(width, height)}

	vertices := s.Graph.Vertices()
	pos := circleLayout(vertices, width, height)
	inTree := treeSeqs(s.Tree)

	// 1. Edges, grey first so green is never hidden.
	edges := s.Graph.Edges()
	for pass := 0; pass < 2; pass++ {
		for _, e := range edges {
			tree := inTree[e.Seq]
			if tree != (pass == 1) {
				continue
			}
			a, b := pos[e.From], pos[e.To]
			lineCol, labelCol, lw := colorOtherEdge, colorOtherLabel, float32(otherEdgeWidth)
			if tree {
				lineCol, labelCol, lw = colorTreeEdge, colorTreeLabel, treeEdgeWidth
			}
			if e.From == e.To {
				// Loop: a small ring above the node, pointing away from the centre.
				cx, cy := outward(a, width, height, nodeRadius)
				c.strokeCircle(cx, cy, nodeRadius/2, lw, lineCol)
				c.text(int(cx)-10, int(cy)-nodeRadius/2-5, strconv.FormatInt(e.Weight, 10), labelCol)
				continue
			}
			c.line(a.x, a.y, b.x, b.y, lw, lineCol)
			midX, midY := int((a.x+b.x)/2), int((a.y+b.y)/2)
			c.text(midX-10, midY-5, strconv.FormatInt(e.Weight, 10), labelCol)
		}
	}

	// 2. Nodes.
	for _, v := range vertices {
		pt := pos[v]
		c.fillCircle(pt.x, pt.y, nodeRadius, colorNode)
		c.strokeCircle(pt.x, pt.y, nodeRadius, outlineWidth, color.Black)
		tw := font.MeasureString(basicfont.Face7x13, v).Ceil()
		c.text(int(pt.x)-tw/2, int(pt.y)+basicfont.Face7x13.Ascent/3, v, color.White)
	}

	// 3. Title block and legend.
	title, cost := titleLines(s)
	c.text(20, 30, title, color.Black)
	if cost != "" {
		c.text(20, 55, cost, color.Black)
	}
	c.text(20, 80, "Green = MST edges", colorTreeEdge)
	c.text(150, 80, "Gray = Non-MST edges", colorOtherLabel)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("PNG.Render(%d): %w", s.ID, err)
	}

	return nil
}

type point struct{ x, y float32 }

// circleLayout spaces n vertices evenly on a circle of radius 0.35·min(w,h) about the
// canvas centre, the first at the top.
func circleLayout(vertices []string, width, height int) map[string]point {
	pos := make(map[string]point, len(vertices))
	n := len(vertices)
	cx, cy := float64(width)/2, float64(height)/2
	r := math.Min(float64(width), float64(height)) * layoutRadius
	for i, v := range vertices {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pos[v] = point{x: float32(cx + r*math.Cos(angle)), y: float32(cy + r*math.Sin(angle))}
	}

	return pos
}

// outward returns the point dist beyond p on the ray from the canvas centre through p.
func outward(p point, width, height int, dist float32) (float32, float32) {
	dx, dy := p.x-float32(width)/2, p.y-float32(height)/2
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return p.x, p.y - dist
	}

	return p.x + dx/l*dist, p.y + dy/l*dist
}

// canvas pairs an image with one reusable rasterizer.
type canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func (c *canvas) fill(col color.Color) {
	b := c.img.Bounds()
	c.z.DrawOp = draw.Over
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
	c.z.Reset(b.Dx(), b.Dy())
}

// line fills the rectangle of the given width centred on the segment.
func (c *canvas) line(x0, y0, x1, y1, width float32, col color.Color) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	c.z.MoveTo(x0+nx, y0+ny)
	c.z.LineTo(x1+nx, y1+ny)
	c.z.LineTo(x1-nx, y1-ny)
	c.z.LineTo(x0-nx, y0-ny)
	c.z.ClosePath()
	c.fill(col)
}

func (c *canvas) fillCircle(cx, cy, r float32, col color.Color) {
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		x, y := cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a))
		if i == 0 {
			c.z.MoveTo(x, y)
		} else {
			c.z.LineTo(x, y)
		}
	}
	c.z.ClosePath()
	c.fill(col)
}

// strokeCircle draws a ring: an outer disc path and an inner one wound the other
// way, so the non-zero fill leaves the middle empty.
func (c *canvas) strokeCircle(cx, cy, r, width float32, col color.Color) {
	outer, inner := r+width/2, r-width/2
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		x, y := cx+outer*float32(math.Cos(a)), cy+outer*float32(math.Sin(a))
		if i == 0 {
			c.z.MoveTo(x, y)
		} else {
			c.z.LineTo(x, y)
		}
	}
	c.z.ClosePath()
	for i := 0; i <= circleSegments; i++ {
		a := -2 * math.Pi * float64(i) / circleSegments
		x, y := cx+inner*float32(math.Cos(a)), cy+inner*float32(math.Sin(a))
		if i == 0 {
			c.z.MoveTo(x, y)
		} else {
			c.z.LineTo(x, y)
		}
	}
	c.z.ClosePath()
	c.fill(col)
}

// text draws s with its baseline at (x, y).
func (c *canvas) text(x, y int, s string, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
