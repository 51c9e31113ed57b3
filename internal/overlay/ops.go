package overlay

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/example/inkover/internal/draw"
)

// operation is one committed annotation. Frames are composed by replaying all
// operations over the backdrop, which is what makes undo a simple pop.
type operation interface {
	apply(c *draw.Canvas, backdrop *image.RGBA)
}

type shapeOp struct {
	shape draw.Shape
}

func (o shapeOp) apply(c *draw.Canvas, _ *image.RGBA) {
	c.RenderShape(o.shape)
}

type textOp struct {
	pos  image.Point
	text string
	col  draw.Color
	face font.Face
}

func (o textOp) apply(c *draw.Canvas, _ *image.RGBA) {
	d := &font.Drawer{
		Dst:  c.Image(),
		Src:  image.NewUniform(o.col.NRGBA()),
		Face: o.face,
		Dot:  fixed.P(o.pos.X, o.pos.Y),
	}
	d.DrawString(o.text)
}

// eraseOp restores the backdrop pixels along a freehand trail, removing any
// annotation painted there by earlier operations.
type eraseOp struct {
	points []image.Point
	size   float64
}

func (o eraseOp) apply(c *draw.Canvas, backdrop *image.RGBA) {
	if len(o.points) == 0 {
		return
	}
	stamp := func(x, y int) {
		restoreBackdrop(c.Image(), backdrop, x, y, int(o.size)/2)
	}
	stamp(o.points[0].X, o.points[0].Y)
	for i := 1; i < len(o.points); i++ {
		walkLine(o.points[i-1], o.points[i], stamp)
	}
}

func restoreBackdrop(dst, backdrop *image.RGBA, x, y, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			pt := image.Pt(x+dx, y+dy)
			if !pt.In(dst.Bounds()) || !pt.In(backdrop.Bounds()) {
				continue
			}
			dst.SetRGBA(pt.X, pt.Y, backdrop.RGBAAt(pt.X, pt.Y))
		}
	}
}

// walkLine visits every pixel of the segment using Bresenham's algorithm.
func walkLine(a, b image.Point, visit func(x, y int)) {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
