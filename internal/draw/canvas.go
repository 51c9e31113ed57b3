package draw

import (
	"image"
	"image/color"
	"math"
)

// Canvas rasterizes shapes onto an RGBA image. It is the drawing context the
// input core hands provisional and committed geometry to.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas wraps the destination image.
func NewCanvas(img *image.RGBA) *Canvas {
	return &Canvas{img: img}
}

// Image returns the destination image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// RenderShape rasterizes any shape variant.
func (c *Canvas) RenderShape(s Shape) {
	switch s := s.(type) {
	case Freehand:
		c.RenderFreehand(s.Points, s.Color, s.Thick, s.PointColors)
	case Line:
		c.renderSegment(s.X1, s.Y1, s.X2, s.Y2, s.Color, s.Thick, s.StartColor, s.EndColor, false)
	case Rect:
		c.renderRect(s)
	case Ellipse:
		c.renderEllipse(s)
	case Arrow:
		c.renderArrow(s)
	case MarkerStroke:
		c.RenderMarkerStroke(s.Points, s.Color, s.Thick, s.PointColors)
	}
}

// RenderFreehand draws a polyline directly from a borrowed point slice.
// pointColors, when non-nil, must have one entry per point; each segment is
// drawn in the color of its starting point.
func (c *Canvas) RenderFreehand(points []image.Point, col Color, thick float64, pointColors []Color) {
	if len(points) == 0 {
		return
	}
	if len(points) == 1 {
		c.setThickPixel(points[0].X, points[0].Y, thick, c.pointColor(col, pointColors, 0), false)
		return
	}
	for i := 1; i < len(points); i++ {
		segCol := c.pointColor(col, pointColors, i-1)
		c.drawLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, segCol, thick, false)
	}
}

// RenderMarkerStroke draws a polyline with alpha blending so the backdrop
// stays visible through the stroke.
func (c *Canvas) RenderMarkerStroke(points []image.Point, col Color, thick float64, pointColors []Color) {
	if len(points) == 0 {
		return
	}
	if len(points) == 1 {
		c.setThickPixel(points[0].X, points[0].Y, thick, c.pointColor(col, pointColors, 0), true)
		return
	}
	for i := 1; i < len(points); i++ {
		segCol := c.pointColor(col, pointColors, i-1)
		c.drawLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, segCol, thick, true)
	}
}

func (c *Canvas) pointColor(uniform Color, pointColors []Color, i int) Color {
	if i < len(pointColors) {
		return pointColors[i]
	}
	return uniform
}

func (c *Canvas) renderSegment(x1, y1, x2, y2 int, col Color, thick float64, start, end *Color, blend bool) {
	if start != nil && end != nil {
		c.drawGradientLine(x1, y1, x2, y2, *start, *end, thick, blend)
		return
	}
	c.drawLine(x1, y1, x2, y2, col, thick, blend)
}

func (c *Canvas) renderRect(s Rect) {
	col, grad := s.Color, s.StartColor != nil && s.EndColor != nil
	if s.Fill {
		fill := col
		if grad {
			fill = *s.StartColor
		}
		for y := s.Y; y < s.Y+s.H; y++ {
			for x := s.X; x < s.X+s.W; x++ {
				c.put(x, y, fill, false)
			}
		}
	}
	// Outline runs top, right, bottom, left; a gradient sweeps along it.
	if grad {
		c.drawGradientLine(s.X, s.Y, s.X+s.W, s.Y, *s.StartColor, *s.EndColor, s.Thick, false)
		c.drawGradientLine(s.X+s.W, s.Y, s.X+s.W, s.Y+s.H, *s.StartColor, *s.EndColor, s.Thick, false)
		c.drawGradientLine(s.X+s.W, s.Y+s.H, s.X, s.Y+s.H, *s.EndColor, *s.StartColor, s.Thick, false)
		c.drawGradientLine(s.X, s.Y+s.H, s.X, s.Y, *s.EndColor, *s.StartColor, s.Thick, false)
		return
	}
	c.drawLine(s.X, s.Y, s.X+s.W, s.Y, col, s.Thick, false)
	c.drawLine(s.X+s.W, s.Y, s.X+s.W, s.Y+s.H, col, s.Thick, false)
	c.drawLine(s.X+s.W, s.Y+s.H, s.X, s.Y+s.H, col, s.Thick, false)
	c.drawLine(s.X, s.Y+s.H, s.X, s.Y, col, s.Thick, false)
}

func (c *Canvas) renderEllipse(s Ellipse) {
	if s.RX <= 0 && s.RY <= 0 {
		c.setThickPixel(s.CX, s.CY, s.Thick, s.Color, false)
		return
	}
	if s.Fill {
		fill := s.Color
		if s.StartColor != nil {
			fill = *s.StartColor
		}
		c.fillEllipse(s.CX, s.CY, s.RX, s.RY, fill)
	}
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(float64(s.RX*s.RX+s.RY*s.RY))))
	if steps < 8 {
		steps = 8
	}
	grad := s.StartColor != nil && s.EndColor != nil
	var prev image.Point
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		pt := image.Pt(
			s.CX+int(math.Cos(angle)*float64(s.RX)),
			s.CY+int(math.Sin(angle)*float64(s.RY)),
		)
		if i > 0 {
			col := s.Color
			if grad {
				// Sweep the gradient out and back so the seam at angle 0 is
				// continuous.
				t := float64(i) / float64(steps)
				col = lerp(*s.StartColor, *s.EndColor, 1-math.Abs(2*t-1))
			}
			c.drawLine(prev.X, prev.Y, pt.X, pt.Y, col, s.Thick, false)
		}
		prev = pt
	}
}

func (c *Canvas) renderArrow(s Arrow) {
	c.renderSegment(s.X1, s.Y1, s.X2, s.Y2, s.Color, s.Thick, s.StartColor, s.EndColor, false)
	headCol := s.Color
	if s.EndColor != nil {
		headCol = *s.EndColor
	}
	angle := math.Atan2(float64(s.Y2-s.Y1), float64(s.X2-s.X1))
	length := s.HeadLength
	if length <= 0 {
		length = 6 + s.Thick*2
	}
	spread := s.HeadAngle
	if spread <= 0 {
		spread = math.Pi / 6
	}
	for _, a := range []float64{angle + spread, angle - spread} {
		hx := s.X2 - int(math.Cos(a)*length)
		hy := s.Y2 - int(math.Sin(a)*length)
		c.drawLine(s.X2, s.Y2, hx, hy, headCol, s.Thick, false)
	}
}

func (c *Canvas) fillEllipse(cx, cy, rx, ry int, col Color) {
	if ry <= 0 {
		c.drawLine(cx-rx, cy, cx+rx, cy, col, 1, false)
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		span := int(float64(rx) * math.Sqrt(1.0-float64(dy*dy)/float64(ry*ry)))
		for dx := -span; dx <= span; dx++ {
			c.put(cx+dx, cy+dy, col, false)
		}
	}
}

// drawLine walks Bresenham's algorithm stamping a thick pixel at each step.
func (c *Canvas) drawLine(x0, y0, x1, y1 int, col Color, thick float64, blend bool) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
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
		c.setThickPixel(x0, y0, thick, col, blend)
		if x0 == x1 && y0 == y1 {
			break
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

// drawGradientLine interpolates the color along the segment by the fraction
// of the distance walked so far.
func (c *Canvas) drawGradientLine(x0, y0, x1, y1 int, start, end Color, thick float64, blend bool) {
	total := Distance(image.Pt(x0, y0), image.Pt(x1, y1))
	if total == 0 {
		c.setThickPixel(x0, y0, thick, start, blend)
		return
	}
	origin := image.Pt(x0, y0)
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
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
		t := Distance(origin, image.Pt(x0, y0)) / total
		c.setThickPixel(x0, y0, thick, lerp(start, end, t), blend)
		if x0 == x1 && y0 == y1 {
			break
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

func (c *Canvas) setThickPixel(x, y int, thick float64, col Color, blend bool) {
	r := int(thick) / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			c.put(x+dx, y+dy, col, blend)
		}
	}
}

// put writes one pixel. Translucent colors are always composited over the
// destination; blend forces compositing even for opaque marker colors.
func (c *Canvas) put(x, y int, col Color, blend bool) {
	if !(image.Pt(x, y).In(c.img.Bounds())) {
		return
	}
	if !blend && col.A >= 1 {
		c.img.SetRGBA(x, y, rgbaOf(col))
		return
	}
	dst := c.img.RGBAAt(x, y)
	a := col.A
	c.img.SetRGBA(x, y, color.RGBA{
		R: blendChannel(col.R, dst.R, a),
		G: blendChannel(col.G, dst.G, a),
		B: blendChannel(col.B, dst.B, a),
		A: 255,
	})
}

func rgbaOf(col Color) color.RGBA {
	n := col.NRGBA()
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}

func blendChannel(src float64, dst uint8, alpha float64) uint8 {
	v := src*alpha*255 + float64(dst)*(1-alpha)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
