// Package render decorates annotated images before they are written out.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow drawn behind a saved image.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns a soft shadow that suits screenshots.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  24,
		Offset:  image.Pt(16, 16),
		Opacity: 0.55,
	}
}

// Shadow places img on a transparent canvas with a blurred drop shadow
// behind it. The result has zero-based bounds. A nil image, empty bounds or
// zero opacity returns img unchanged.
func Shadow(img *image.RGBA, opts ShadowOptions) *image.RGBA {
	if img == nil || img.Bounds().Empty() || opts.Opacity <= 0 {
		return img
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	src := img.Bounds()
	padded := src.Inset(-radius)
	shadowRect := padded.Add(opts.Offset)
	composite := src.Union(shadowRect)

	dst := image.NewRGBA(composite.Sub(composite.Min))
	shift := composite.Min.Mul(-1)

	mask := image.NewGray(padded.Sub(padded.Min))
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			if a := img.RGBAAt(x, y).A; a > 0 {
				mask.SetGray(x-padded.Min.X, y-padded.Min.Y, color.Gray{Y: a})
			}
		}
	}
	blurred := boxBlur(mask, radius)

	shadowAlpha := uint8(opacity*255 + 0.5)
	draw.DrawMask(dst, blurred.Bounds().Add(shadowRect.Min).Add(shift),
		image.NewUniform(color.RGBA{0, 0, 0, shadowAlpha}), image.Point{},
		blurred, blurred.Bounds().Min, draw.Over)
	draw.Draw(dst, src.Add(shift), img, src.Min, draw.Over)
	return dst
}

// boxBlur applies a separable box blur with the given radius.
func boxBlur(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		out := image.NewGray(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	tmp := image.NewGray(src.Bounds())
	dst := image.NewGray(src.Bounds())

	for y := 0; y < h; y++ {
		prefix := make([]int, w+1)
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(src.Pix[y*src.Stride+x])
		}
		for x := 0; x < w; x++ {
			x0 := max(x-radius, 0)
			x1 := min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
		}
	}

	for x := 0; x < w; x++ {
		prefix := make([]int, h+1)
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0 := max(y-radius, 0)
			y1 := min(y+radius, h-1)
			dst.Pix[y*dst.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
		}
	}

	return dst
}
