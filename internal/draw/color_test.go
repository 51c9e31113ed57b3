package draw

import (
	"image/color"
	"math"
	"testing"
)

func TestFromHSVPrimaries(t *testing.T) {
	cases := []struct {
		hue  float64
		want color.NRGBA
	}{
		{0, color.NRGBA{255, 0, 0, 255}},
		{120, color.NRGBA{0, 255, 0, 255}},
		{240, color.NRGBA{0, 0, 255, 255}},
	}
	for _, c := range cases {
		got := FromHSV(c.hue, 1, 1, 1).NRGBA()
		if got != c.want {
			t.Errorf("FromHSV(%v) = %+v, want %+v", c.hue, got, c.want)
		}
	}
}

func TestFromHSVWrapsHue(t *testing.T) {
	a := FromHSV(30, 1, 1, 1)
	b := FromHSV(390, 1, 1, 1)
	if a != b {
		t.Errorf("hue 390 should wrap to 30: %+v vs %+v", b, a)
	}
}

func TestColorRoundTrip(t *testing.T) {
	orig := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	c := FromColor(orig)
	if got := c.NRGBA(); got != orig {
		t.Errorf("round trip = %+v, want %+v", got, orig)
	}
}

func TestWithAlpha(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 1}.WithAlpha(0.25)
	if math.Abs(c.A-0.25) > 1e-12 || c.R != 1 || c.G != 0.5 {
		t.Errorf("WithAlpha changed more than alpha: %+v", c)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := Color{R: 0, G: 0, B: 0, A: 1}
	b := Color{R: 1, G: 1, B: 1, A: 1}
	if lerp(a, b, 0) != a {
		t.Error("lerp at 0 should return start")
	}
	if lerp(a, b, 1) != b {
		t.Error("lerp at 1 should return end")
	}
	mid := lerp(a, b, 0.5)
	if math.Abs(mid.R-0.5) > 1e-12 {
		t.Errorf("lerp midpoint = %+v", mid)
	}
}
