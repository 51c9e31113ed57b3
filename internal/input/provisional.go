package input

import (
	"image"
	"math"

	"github.com/example/inkover/internal/draw"
)

// eraserPreviewColor is what the eraser stroke looks like while the gesture
// is in flight; the destructive erase happens only on commit.
var eraserPreviewColor = draw.Color{R: 1, G: 1, B: 1, A: 0.35}

// ProvisionalShape returns the shape currently being drawn, for live preview
// at the given pointer position. It reports false when idle, in text input,
// or when the active tool's preview is handled by a different path (eraser,
// highlight, select).
//
// For pen and marker this copies the accumulated point trail; hosts on a
// per-pointer-move hot path should prefer RenderProvisional, which borrows
// the trail instead.
func (s *State) ProvisionalShape(currentX, currentY int) (draw.Shape, bool) {
	d, ok := s.state.(*Drawing)
	if !ok {
		return nil, false
	}
	return s.buildShape(d, currentX, currentY)
}

func (s *State) buildShape(d *Drawing, currentX, currentY int) (draw.Shape, bool) {
	cur := image.Pt(currentX, currentY)
	switch d.Tool {
	case ToolPen:
		points := make([]image.Point, len(d.Points))
		copy(points, d.Points)
		var pointColors []draw.Color
		if s.rainbowEnabled {
			pointColors = s.GenerateRainbowColors(points)
		}
		return draw.Freehand{
			Points:      points,
			Color:       s.currentColor,
			Thick:       s.currentThickness,
			PointColors: pointColors,
		}, true
	case ToolLine:
		start, end := s.lineEndpoints(d.Start, cur)
		return draw.Line{
			X1: d.Start.X, Y1: d.Start.Y, X2: cur.X, Y2: cur.Y,
			Color:      s.currentColor,
			Thick:      s.currentThickness,
			StartColor: start,
			EndColor:   end,
		}, true
	case ToolRect:
		r := draw.NormalizeRect(d.Start, cur)
		var start, end *draw.Color
		if s.rainbowEnabled {
			diagonal := math.Hypot(float64(r.Dx()), float64(r.Dy()))
			start, end = s.rainbowEndpoints(diagonal)
		}
		return draw.Rect{
			X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy(),
			Fill:       s.fillEnabled,
			Color:      s.currentColor,
			Thick:      s.currentThickness,
			StartColor: start,
			EndColor:   end,
		}, true
	case ToolEllipse:
		center, rx, ry := draw.EllipseBounds(d.Start, cur)
		var start, end *draw.Color
		if s.rainbowEnabled {
			start, end = s.rainbowEndpoints(float64(rx * 2))
		}
		return draw.Ellipse{
			CX: center.X, CY: center.Y, RX: rx, RY: ry,
			Fill:       s.fillEnabled,
			Color:      s.currentColor,
			Thick:      s.currentThickness,
			StartColor: start,
			EndColor:   end,
		}, true
	case ToolArrow:
		start, end := s.lineEndpoints(d.Start, cur)
		return draw.Arrow{
			X1: d.Start.X, Y1: d.Start.Y, X2: cur.X, Y2: cur.Y,
			Color:      s.currentColor,
			Thick:      s.currentThickness,
			HeadLength: s.arrowLength,
			HeadAngle:  s.arrowAngle,
			StartColor: start,
			EndColor:   end,
		}, true
	case ToolMarker:
		points := make([]image.Point, len(d.Points))
		copy(points, d.Points)
		return draw.MarkerStroke{
			Points:      points,
			Color:       s.MarkerColor(),
			Thick:       s.currentThickness,
			PointColors: s.markerPointColors(points),
		}, true
	default:
		// Eraser previews on a separate non-destructive path; highlight and
		// select have no generic preview.
		return nil, false
	}
}

func (s *State) lineEndpoints(start, cur image.Point) (*draw.Color, *draw.Color) {
	if !s.rainbowEnabled {
		return nil, nil
	}
	return s.rainbowEndpoints(draw.Distance(start, cur))
}

func (s *State) markerPointColors(points []image.Point) []draw.Color {
	if !s.rainbowEnabled {
		return nil
	}
	colors := s.GenerateRainbowColors(points)
	for i := range colors {
		colors[i].A = s.markerOpacity
	}
	return colors
}

// RenderProvisional renders the in-flight gesture straight to the canvas.
// Pen, marker and eraser render from a borrowed view of the accumulated
// trail, avoiding the per-move copy that ProvisionalShape makes; all other
// tools build the owned shape, whose size is fixed regardless of gesture
// length. Reports whether anything was rendered.
func (s *State) RenderProvisional(c *draw.Canvas, currentX, currentY int) bool {
	d, ok := s.state.(*Drawing)
	if !ok {
		return false
	}
	switch d.Tool {
	case ToolPen:
		var pointColors []draw.Color
		if s.rainbowEnabled {
			pointColors = s.GenerateRainbowColors(d.Points)
		}
		c.RenderFreehand(d.Points, s.currentColor, s.currentThickness, pointColors)
		return true
	case ToolMarker:
		c.RenderMarkerStroke(d.Points, s.MarkerColor(), s.currentThickness, s.markerPointColors(d.Points))
		return true
	case ToolEraser:
		// Visual preview only; the canvas buffer is untouched until commit.
		c.RenderFreehand(d.Points, eraserPreviewColor, s.eraserSize, nil)
		return true
	case ToolHighlight:
		return false
	default:
		if shape, built := s.buildShape(d, currentX, currentY); built {
			c.RenderShape(shape)
			return true
		}
		return false
	}
}

// MarkerColor derives the marker's effective color from the base color and
// the opacity multiplier. The alpha floor keeps the marker visible even when
// the base color is fully transparent; the ceiling keeps it translucent.
func (s *State) MarkerColor() draw.Color {
	alpha := clamp(s.currentColor.A*s.markerOpacity, minMarkerOpacity, maxMarkerOpacity)
	return s.currentColor.WithAlpha(alpha)
}
