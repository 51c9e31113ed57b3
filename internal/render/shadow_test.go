package render

import (
	"image"
	"image/color"
	"testing"
)

func TestShadowExpandsBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	subject := image.Pt(5, 5)
	img.Set(subject.X, subject.Y, color.RGBA{R: 255, A: 255})

	opts := ShadowOptions{Radius: 4, Offset: image.Pt(8, 6), Opacity: 0.5}
	out := Shadow(img, opts)
	if out == nil {
		t.Fatal("expected output image")
	}
	expected := image.Rect(0, 0, 22, 20)
	if !out.Bounds().Eq(expected) {
		t.Fatalf("unexpected bounds %v, want %v", out.Bounds(), expected)
	}
	// The shadow should land under the subject pixel shifted by the offset.
	shadowPt := subject.Add(opts.Offset)
	if out.RGBAAt(shadowPt.X, shadowPt.Y).A == 0 {
		t.Fatalf("expected shadow alpha at %v", shadowPt)
	}
}

func TestShadowNoOpWhenOpacityZero(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, fill)
		}
	}
	out := Shadow(img, ShadowOptions{Radius: 12, Offset: image.Pt(20, 10), Opacity: 0})
	if out != img {
		t.Fatalf("expected the input image back, got %v", out.Bounds())
	}
}

func TestShadowBlursAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{A: 255})
	opts := ShadowOptions{Radius: 2, Offset: image.Pt(3, 0), Opacity: 1}

	out := Shadow(img, opts)
	if out.Bounds().Dx() <= img.Bounds().Dx() {
		t.Fatalf("expected wider output bounds, got %v", out.Bounds())
	}
	// The source corner ends up translated on the expanded canvas. Its
	// shadow sits offset from there, and the blur spreads the alpha to
	// neighboring pixels.
	content := image.Pt(0, 2)
	base := content.Add(opts.Offset)
	if out.RGBAAt(base.X, base.Y).A == 0 {
		t.Fatal("expected alpha at the shadow location")
	}
	if out.RGBAAt(base.X+1, base.Y).A == 0 {
		t.Fatal("expected blurred alpha to reach the neighbor pixel")
	}
}
