package draw

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with float64 channels in [0, 1]. Channels are not
// premultiplied; alpha is applied at render time.
type Color struct {
	R, G, B, A float64
}

// FromHSV builds a Color from hue (degrees), saturation, value and alpha.
// The hue is wrapped into [0, 360).
func FromHSV(hue, saturation, value, alpha float64) Color {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsv(h, saturation, value)
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}
}

// FromColor converts any image/color value into a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// NRGBA converts the color to 8-bit non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channelByte(c.R),
		G: channelByte(c.G),
		B: channelByte(c.B),
		A: channelByte(c.A),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(alpha float64) Color {
	c.A = alpha
	return c
}

func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// lerp interpolates between two colors, t in [0, 1].
func lerp(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
