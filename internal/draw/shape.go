// Package draw provides the shape descriptions and the raster rendering
// collaborator consumed by the overlay's input/state core.
package draw

import "image"

// Shape is the closed set of geometry descriptions a gesture can produce.
// Rendering sites type-switch over the concrete variants; no other
// implementations exist.
type Shape interface {
	shape()
}

// Freehand is a polyline through the accumulated gesture points.
// PointColors, when non-nil, carries one color per point for rainbow strokes
// and takes precedence over the uniform Color.
type Freehand struct {
	Points      []image.Point
	Color       Color
	Thick       float64
	PointColors []Color
}

// Line is a straight segment. StartColor/EndColor, when set, render a
// gradient between the endpoints instead of the uniform Color.
type Line struct {
	X1, Y1, X2, Y2 int
	Color          Color
	Thick          float64
	StartColor     *Color
	EndColor       *Color
}

// Rect is an axis-aligned rectangle in canonical top-left/width/height form.
type Rect struct {
	X, Y, W, H int
	Fill       bool
	Color      Color
	Thick      float64
	StartColor *Color
	EndColor   *Color
}

// Ellipse is described by its center and half-axes.
type Ellipse struct {
	CX, CY, RX, RY int
	Fill           bool
	Color          Color
	Thick          float64
	StartColor     *Color
	EndColor       *Color
}

// Arrow is a line with a head at the (X2, Y2) end. HeadLength is in pixels,
// HeadAngle in radians between the shaft and each head stroke.
type Arrow struct {
	X1, Y1, X2, Y2 int
	Color          Color
	Thick          float64
	HeadLength     float64
	HeadAngle      float64
	StartColor     *Color
	EndColor       *Color
}

// MarkerStroke is a freehand polyline rendered with alpha blending so the
// backdrop shows through.
type MarkerStroke struct {
	Points      []image.Point
	Color       Color
	Thick       float64
	PointColors []Color
}

func (Freehand) shape()     {}
func (Line) shape()         {}
func (Rect) shape()         {}
func (Ellipse) shape()      {}
func (Arrow) shape()        {}
func (MarkerStroke) shape() {}
