package draw

import (
	"image"
	"math"
)

// NormalizeRect returns the canonical rectangle spanned by two opposite
// corners regardless of the drag direction.
func NormalizeRect(a, b image.Point) image.Rectangle {
	return image.Rectangle{Min: a, Max: a}.Union(image.Rectangle{Min: b, Max: b})
}

// EllipseBounds derives the center and half-axes of the ellipse inscribed in
// the rectangle spanned by two opposite corners.
func EllipseBounds(a, b image.Point) (center image.Point, rx, ry int) {
	r := NormalizeRect(a, b)
	center = image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
	return center, r.Dx() / 2, r.Dy() / 2
}

// PathLength sums the piecewise Euclidean segment lengths of a polyline.
func PathLength(points []image.Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// Distance is the Euclidean distance between two integer points.
func Distance(a, b image.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Hypot(dx, dy)
}
