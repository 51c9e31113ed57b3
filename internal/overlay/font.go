package overlay

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	textFont  *opentype.Font
	faceCache = map[float64]font.Face{}
)

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	textFont = f
}

// faceForSize returns a cached face for the given point size. The overlay is
// single threaded, so the cache needs no locking.
func faceForSize(size float64) font.Face {
	if face, ok := faceCache[size]; ok {
		return face
	}
	face, err := opentype.NewFace(textFont, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
	faceCache[size] = face
	return face
}
