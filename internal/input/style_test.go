package input

import (
	"math"
	"testing"

	"github.com/example/inkover/internal/draw"
)

func TestSetThicknessClamps(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{5, 5},
		{MinStrokeThickness, MinStrokeThickness},
		{MaxStrokeThickness, MaxStrokeThickness},
		{0, MinStrokeThickness},
		{-10, MinStrokeThickness},
		{1000, MaxStrokeThickness},
	}
	for _, c := range cases {
		s := New()
		s.SetThickness(c.in)
		if got := s.Thickness(); got != c.want {
			t.Errorf("SetThickness(%v): stored %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSetEraserSizeClamps(t *testing.T) {
	s := New()
	s.SetEraserSize(9999)
	if got := s.EraserSize(); got != MaxStrokeThickness {
		t.Errorf("eraser size = %v, want %v", got, MaxStrokeThickness)
	}
	s.SetEraserSize(-3)
	if got := s.EraserSize(); got != MinStrokeThickness {
		t.Errorf("eraser size = %v, want %v", got, MinStrokeThickness)
	}
}

func TestSetterIdempotence(t *testing.T) {
	tracker := &FullTracker{}
	s := New(WithDirtyTracker(tracker))

	if !s.SetThickness(7) {
		t.Fatal("first SetThickness should report a change")
	}
	if !tracker.Take() {
		t.Fatal("first SetThickness should mark the tracker dirty")
	}
	if s.SetThickness(7) {
		t.Fatal("second SetThickness with the same value should be a no-op")
	}
	if tracker.Take() {
		t.Fatal("no-op setter must not mark the tracker dirty")
	}

	// Out-of-range value that clamps onto the current value is also a no-op.
	s.SetThickness(MaxStrokeThickness)
	tracker.Take()
	if s.SetThickness(MaxStrokeThickness + 100) {
		t.Fatal("value clamping onto the stored one should be a no-op")
	}
	if tracker.Take() {
		t.Fatal("clamped no-op must not invalidate")
	}
}

func TestSetMarkerOpacityClamps(t *testing.T) {
	s := New()
	s.SetMarkerOpacity(2)
	if got := s.MarkerOpacity(); got != 0.9 {
		t.Errorf("opacity = %v, want 0.9", got)
	}
	s.SetMarkerOpacity(0)
	if got := s.MarkerOpacity(); got != 0.05 {
		t.Errorf("opacity = %v, want 0.05", got)
	}
}

func TestSetFontSizeClamps(t *testing.T) {
	s := New()
	s.SetFontSize(4)
	if got := s.FontSize(); got != 8 {
		t.Errorf("font size = %v, want 8", got)
	}
	s.SetFontSize(200)
	if got := s.FontSize(); got != 72 {
		t.Errorf("font size = %v, want 72", got)
	}
}

func TestSetColorSyncsHighlight(t *testing.T) {
	s := New()
	blue := draw.Color{B: 1, A: 1}
	if !s.SetColor(blue) {
		t.Fatal("SetColor should report a change")
	}
	if s.SetColor(blue) {
		t.Fatal("same color should be a no-op")
	}
	hl := s.HighlightColor()
	if hl.B != 1 || hl.R != 0 {
		t.Errorf("highlight should follow the base color, got %+v", hl)
	}
	if hl.A >= 1 {
		t.Errorf("highlight must be translucent, got alpha %v", hl.A)
	}
}

func TestMarkerColorAlphaFloor(t *testing.T) {
	s := New(WithMarkerOpacity(0.5))
	s.SetColor(draw.Color{R: 1, A: 0})
	if got := s.MarkerColor().A; got != 0.05 {
		t.Errorf("marker alpha = %v, want floor 0.05", got)
	}
}

func TestMarkerColorAlphaCeiling(t *testing.T) {
	s := New(WithMarkerOpacity(0.9))
	s.SetColor(draw.Color{R: 1, A: 1})
	if got := s.MarkerColor().A; got > 0.9 {
		t.Errorf("marker alpha = %v, want at most 0.9", got)
	}
}

func TestThicknessDispatchByActiveTool(t *testing.T) {
	s := New(WithDefaultTool(ToolPen), WithThickness(3), WithEraserSize(12))

	s.SetThicknessForActiveTool(5)
	if s.Thickness() != 5 || s.EraserSize() != 12 {
		t.Fatalf("pen active: thickness=%v eraser=%v", s.Thickness(), s.EraserSize())
	}

	s.SetToolOverride(ToolEraser)
	s.SetThicknessForActiveTool(20)
	if s.Thickness() != 5 || s.EraserSize() != 20 {
		t.Fatalf("eraser active: thickness=%v eraser=%v", s.Thickness(), s.EraserSize())
	}

	s.NudgeThicknessForActiveTool(2)
	if s.EraserSize() != 22 {
		t.Errorf("nudge should hit the eraser slot, eraser=%v", s.EraserSize())
	}
	s.ClearToolOverride()
	s.NudgeThicknessForActiveTool(-1)
	if s.Thickness() != 4 {
		t.Errorf("nudge should hit the thickness slot, thickness=%v", s.Thickness())
	}
}

func TestToolOverrideNoOp(t *testing.T) {
	s := New()
	if s.ClearToolOverride() {
		t.Fatal("clearing an absent override should be a no-op")
	}
	if !s.SetToolOverride(ToolRect) {
		t.Fatal("setting a new override should report a change")
	}
	if s.SetToolOverride(ToolRect) {
		t.Fatal("re-setting the same override should be a no-op")
	}
	if !s.ClearToolOverride() {
		t.Fatal("clearing a present override should report a change")
	}
	if tool, ok := s.ToolOverride(); ok {
		t.Fatalf("override should be gone, got %v", tool)
	}
}

func TestToolChangeResetsDrawing(t *testing.T) {
	s := New(WithDefaultTool(ToolPen))
	s.StartGesture(5, 5)
	if _, ok := s.DrawingState().(*Drawing); !ok {
		t.Fatal("expected Drawing state")
	}
	s.SetToolOverride(ToolLine)
	if _, ok := s.DrawingState().(Idle); !ok {
		t.Fatalf("tool change must reset to Idle, got %T", s.DrawingState())
	}
}

func TestToolChangePreservesTextInput(t *testing.T) {
	s := New()
	s.BeginTextInput(10, 10)
	s.SetToolOverride(ToolArrow)
	if _, ok := s.DrawingState().(*TextInput); !ok {
		t.Fatalf("text input must survive a tool change, got %T", s.DrawingState())
	}
}

func TestToolbarLockstep(t *testing.T) {
	s := New()
	if !s.SetToolbarVisible(true) {
		t.Fatal("first SetToolbarVisible should report a change")
	}
	if !s.ToolbarVisible() || !s.ToolbarTopVisible() || !s.ToolbarSideVisible() {
		t.Fatal("all three visibility flags should be set")
	}
	if s.SetToolbarVisible(true) {
		t.Fatal("identical call should be a no-op")
	}
	if !s.SetToolbarVisible(false) {
		t.Fatal("hiding should report a change")
	}
	if s.ToolbarVisible() {
		t.Fatal("all flags should be cleared")
	}
}

func TestInitToolbarFromConfig(t *testing.T) {
	s := New()
	s.InitToolbarFromConfig(true, false, true, false, true, false, true)
	if !s.ToolbarTopPinned() || s.ToolbarSidePinned() {
		t.Error("pinned flags not applied")
	}
	if !s.ToolbarTopVisible() || s.ToolbarSideVisible() {
		t.Error("pinned bars should start visible, unpinned hidden")
	}
	if !s.ToolbarVisible() {
		t.Error("combined flag should reflect any pinned bar")
	}
	if !s.ToolbarUseIcons() || s.ShowMoreColors() {
		t.Error("icon/section flags not applied")
	}
	if !s.ShowActionsSection() || s.ShowDelaySliders() || !s.ShowMarkerOpacitySection() {
		t.Error("section toggles not applied")
	}
}

func TestToolbarActionForwarding(t *testing.T) {
	var got []Action
	s := New(WithActionHandler(ActionHandlerFunc(func(a Action) { got = append(got, a) })))
	s.ToolbarUndo()
	s.ToolbarRedo()
	s.ToolbarClear()
	s.ToolbarEnterTextMode()
	want := []Action{ActionUndo, ActionRedo, ActionClearCanvas, ActionEnterTextMode}
	if len(got) != len(want) {
		t.Fatalf("forwarded %d actions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSetFillEnabled(t *testing.T) {
	s := New()
	if !s.SetFillEnabled(true) {
		t.Fatal("enabling fill should report a change")
	}
	if s.SetFillEnabled(true) {
		t.Fatal("same value should be a no-op")
	}
	if !s.FillEnabled() {
		t.Fatal("fill flag not stored")
	}
}

func TestNearlyEqualTolerance(t *testing.T) {
	if !nearlyEqual(1.0, 1.0+math.SmallestNonzeroFloat64) {
		t.Error("values within tolerance should compare equal")
	}
	if nearlyEqual(1.0, 1.1) {
		t.Error("distinct values should not compare equal")
	}
}
