package input

import (
	"image"
	"log"
	"math"

	"github.com/example/inkover/internal/draw"
)

// ToggleRainbowMode flips rainbow coloring on or off. The hue restarts at 0
// when the mode turns on; while on, it only ever advances forward so
// consecutive strokes continue the progression instead of each restarting.
func (s *State) ToggleRainbowMode() bool {
	s.rainbowEnabled = !s.rainbowEnabled
	if s.rainbowEnabled {
		s.rainbowHue = 0
	}
	log.Printf("rainbow mode: %v (step %v deg/px)", s.rainbowEnabled, s.rainbowHueStep)
	s.markFullyDirty()
	return true
}

// RainbowEnabled reports whether rainbow coloring is active.
func (s *State) RainbowEnabled() bool { return s.rainbowEnabled }

// RainbowHue returns the persistent hue position in degrees.
func (s *State) RainbowHue() float64 { return s.rainbowHue }

// RainbowHueStep returns the configured hue degrees per pixel of distance.
func (s *State) RainbowHueStep() float64 { return s.rainbowHueStep }

// RainbowColorAtDistance maps a path distance to a fully saturated, fully
// bright color; hue grows with distance and wraps at 360 degrees.
func (s *State) RainbowColorAtDistance(distance float64) draw.Color {
	return draw.FromHSV(math.Mod(distance*s.rainbowHueStep, 360), 1, 1, 1)
}

// RainbowColorFromHue builds the vivid rainbow color for a hue position.
func (s *State) RainbowColorFromHue(hue float64) draw.Color {
	return draw.FromHSV(math.Mod(hue, 360), 1, 1, 1)
}

// AdvanceRainbowHue permanently moves the hue position forward by a distance
// offset, wrapping at 360. Called when a shape is committed so the next
// shape continues seamlessly.
func (s *State) AdvanceRainbowHue(distance float64) {
	s.rainbowHue = math.Mod(s.rainbowHue+distance*s.rainbowHueStep, 360)
}

// GenerateRainbowColors returns one color per point, keyed on the cumulative
// Euclidean distance walked up to that point, starting at the current hue
// position. It is a pure preview function: the persistent hue is not
// advanced, and identical inputs yield identical outputs.
func (s *State) GenerateRainbowColors(points []image.Point) []draw.Color {
	if len(points) == 0 {
		return nil
	}
	colors := make([]draw.Color, 0, len(points))
	colors = append(colors, s.RainbowColorFromHue(s.rainbowHue))

	var cumulative float64
	for i := 1; i < len(points); i++ {
		cumulative += draw.Distance(points[i-1], points[i])
		colors = append(colors, s.RainbowColorFromHue(s.rainbowHue+cumulative*s.rainbowHueStep))
	}
	return colors
}

// rainbowEndpoints derives the two color anchors for shapes with exactly two
// meaningful gradient stops, keyed on the shape's characteristic distance.
func (s *State) rainbowEndpoints(distance float64) (*draw.Color, *draw.Color) {
	start := s.RainbowColorFromHue(s.rainbowHue)
	end := s.RainbowColorFromHue(s.rainbowHue + distance*s.rainbowHueStep)
	return &start, &end
}
