package collishi

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Scene rendering for debugging and for the demo binary. The predicates don't
// know anything about this; a Shape is just a bag of the same scalars the
// predicates take.

const drawPadding = 20

// Shape is implemented by Point, Line, Circle, Box and Triangle.
type Shape interface {
	bounds() (minX, minY, maxX, maxY float64)
	render(c *gg.Context)
}

// DrawScene renders the shapes into a PNG at the given path, scaled by scale
// and fit to their common bounding box. The origin is at the bottom left, so
// the picture matches the coordinate conventions of the predicates rather
// than the usual image convention of y growing downward.
func DrawScene(shapes []Shape, scale float64, path string) error {
	if len(shapes) == 0 {
		return errors.New("no shapes to draw")
	}

	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for _, shape := range shapes {
		sMinX, sMinY, sMaxX, sMaxY := shape.bounds()
		minX = math.Min(minX, sMinX)
		minY = math.Min(minY, sMinY)
		maxX = math.Max(maxX, sMaxX)
		maxY = math.Max(maxY, sMaxY)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, shape := range shapes {
		c.SetRGB(0, 0.5, 0)
		shape.render(c)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	return c.SavePNG(path)
}

// CatScene writes the PNG at path inline to the given terminal writer.
func CatScene(path string, out io.Writer) error {
	return imgcat.CatFile(path, out)
}

func (p *Point) bounds() (float64, float64, float64, float64) {
	return p.X, p.Y, p.X, p.Y
}

func (p *Point) render(c *gg.Context) {
	c.DrawCircle(p.X, p.Y, 0.05)
}

func (l *Line) bounds() (float64, float64, float64, float64) {
	minX, maxX := minMax(l.X, l.X+l.DX)
	minY, maxY := minMax(l.Y, l.Y+l.DY)
	return minX, minY, maxX, maxY
}

func (l *Line) render(c *gg.Context) {
	c.MoveTo(l.X, l.Y)
	c.LineTo(l.X+l.DX, l.Y+l.DY)
}

func (ci *Circle) bounds() (float64, float64, float64, float64) {
	return ci.X - ci.R, ci.Y - ci.R, ci.X + ci.R, ci.Y + ci.R
}

func (ci *Circle) render(c *gg.Context) {
	c.DrawCircle(ci.X, ci.Y, ci.R)
}

func (b *Box) bounds() (float64, float64, float64, float64) {
	return b.X, b.Y, b.X + b.W, b.Y + b.H
}

func (b *Box) render(c *gg.Context) {
	c.DrawRectangle(b.X, b.Y, b.W, b.H)
}

func (t *Triangle) bounds() (float64, float64, float64, float64) {
	minX, maxX := minMaxSlice([]float64{t.X, t.X + t.SXA, t.X + t.SXB})
	minY, maxY := minMaxSlice([]float64{t.Y, t.Y + t.SYA, t.Y + t.SYB})
	return minX, minY, maxX, maxY
}

func (t *Triangle) render(c *gg.Context) {
	c.MoveTo(t.X, t.Y)
	c.LineTo(t.X+t.SXA, t.Y+t.SYA)
	c.LineTo(t.X+t.SXB, t.Y+t.SYB)
	c.ClosePath()
}
