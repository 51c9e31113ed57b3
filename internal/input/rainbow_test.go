package input

import (
	"image"
	"math"
	"testing"
)

func TestRainbowToggleResetsHue(t *testing.T) {
	s := New(WithRainbowStep(1))
	s.ToggleRainbowMode()
	if !s.RainbowEnabled() {
		t.Fatal("toggle should enable rainbow mode")
	}
	s.AdvanceRainbowHue(90)
	s.ToggleRainbowMode() // off
	s.ToggleRainbowMode() // on again
	if got := s.RainbowHue(); got != 0 {
		t.Errorf("hue should reset on off->on, got %v", got)
	}
}

func TestRainbowHueAdvancesAndWraps(t *testing.T) {
	s := New(WithRainbowStep(1))
	s.AdvanceRainbowHue(100)
	if got := s.RainbowHue(); got != 100 {
		t.Fatalf("hue = %v, want 100", got)
	}
	s.AdvanceRainbowHue(100)
	s.AdvanceRainbowHue(200)
	if got := s.RainbowHue(); math.Abs(got-40) > 1e-9 {
		t.Errorf("hue should wrap at 360: got %v, want 40", got)
	}
}

func TestRainbowContinuity(t *testing.T) {
	s := New(WithRainbowStep(1))
	s.AdvanceRainbowHue(120)
	// The color at distance 0 of a new stroke must equal the color at the
	// persistent hue position.
	got := s.GenerateRainbowColors([]image.Point{{0, 0}})[0]
	want := s.RainbowColorFromHue(s.RainbowHue())
	if got != want {
		t.Errorf("continuity broken: %+v vs %+v", got, want)
	}
	if s.RainbowColorAtDistance(0) != s.RainbowColorFromHue(0) {
		t.Error("distance 0 should map to hue 0")
	}
}

func TestGenerateRainbowColorsIsPure(t *testing.T) {
	s := New(WithRainbowStep(2))
	s.AdvanceRainbowHue(10)
	before := s.RainbowHue()
	pts := []image.Point{{0, 0}, {10, 0}, {10, 10}}

	first := s.GenerateRainbowColors(pts)
	second := s.GenerateRainbowColors(pts)

	if got := s.RainbowHue(); got != before {
		t.Fatalf("preview mutated the hue: %v -> %v", before, got)
	}
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs between identical calls", i)
		}
	}
}

func TestGenerateRainbowColorsByDistance(t *testing.T) {
	s := New(WithRainbowStep(1))
	pts := []image.Point{{0, 0}, {3, 4}, {3, 4}}
	colors := s.GenerateRainbowColors(pts)
	if len(colors) != 3 {
		t.Fatalf("got %d colors, want 3", len(colors))
	}
	if colors[0] != s.RainbowColorFromHue(0) {
		t.Error("first point should carry the current hue exactly")
	}
	// (0,0)->(3,4) is distance 5; the repeated point adds nothing.
	if colors[1] != s.RainbowColorFromHue(5) {
		t.Error("second point should sit 5 degrees along")
	}
	if colors[2] != colors[1] {
		t.Error("zero-length segment must not advance the hue")
	}
}

func TestGenerateRainbowColorsEmpty(t *testing.T) {
	s := New()
	if got := s.GenerateRainbowColors(nil); len(got) != 0 {
		t.Errorf("empty input should yield no colors, got %d", len(got))
	}
}
