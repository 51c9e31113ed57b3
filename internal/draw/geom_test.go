package draw

import (
	"image"
	"math"
	"testing"
)

func TestNormalizeRectAnyDragDirection(t *testing.T) {
	want := image.Rect(0, 0, 10, 10)
	cases := [][2]image.Point{
		{image.Pt(0, 0), image.Pt(10, 10)},
		{image.Pt(10, 10), image.Pt(0, 0)},
		{image.Pt(10, 0), image.Pt(0, 10)},
		{image.Pt(0, 10), image.Pt(10, 0)},
	}
	for _, c := range cases {
		got := NormalizeRect(c[0], c[1])
		if !got.Eq(want) {
			t.Errorf("NormalizeRect(%v, %v) = %v, want %v", c[0], c[1], got, want)
		}
	}
}

func TestEllipseBounds(t *testing.T) {
	center, rx, ry := EllipseBounds(image.Pt(10, 20), image.Pt(50, 60))
	if center != image.Pt(30, 40) {
		t.Errorf("center = %v, want (30,40)", center)
	}
	if rx != 20 || ry != 20 {
		t.Errorf("radii = (%d,%d), want (20,20)", rx, ry)
	}

	// Dragging up-left must give the same bounds.
	center2, rx2, ry2 := EllipseBounds(image.Pt(50, 60), image.Pt(10, 20))
	if center2 != center || rx2 != rx || ry2 != ry {
		t.Errorf("reverse drag mismatch: %v (%d,%d)", center2, rx2, ry2)
	}
}

func TestPathLength(t *testing.T) {
	pts := []image.Point{{0, 0}, {3, 4}, {3, 4}, {6, 8}}
	if got := PathLength(pts); math.Abs(got-10) > 1e-9 {
		t.Errorf("PathLength = %v, want 10", got)
	}
	if got := PathLength(nil); got != 0 {
		t.Errorf("PathLength(nil) = %v, want 0", got)
	}
	if got := PathLength(pts[:1]); got != 0 {
		t.Errorf("PathLength(single) = %v, want 0", got)
	}
}
