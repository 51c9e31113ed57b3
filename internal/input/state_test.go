package input

import (
	"math"
	"testing"

	"github.com/example/inkover/internal/draw"
)

func TestGestureLifecycle(t *testing.T) {
	s := New(WithDefaultTool(ToolPen))
	if _, ok := s.DrawingState().(Idle); !ok {
		t.Fatalf("initial state should be Idle, got %T", s.DrawingState())
	}

	s.StartGesture(1, 1)
	d, ok := s.DrawingState().(*Drawing)
	if !ok {
		t.Fatalf("expected Drawing, got %T", s.DrawingState())
	}
	if d.Tool != ToolPen {
		t.Errorf("captured tool = %v, want pen", d.Tool)
	}
	if len(d.Points) != 1 {
		t.Errorf("freehand gesture should start with its origin point, got %d", len(d.Points))
	}

	s.ExtendGesture(2, 2)
	s.ExtendGesture(3, 3)
	if len(d.Points) != 3 {
		t.Errorf("points = %d, want 3", len(d.Points))
	}

	shape, built := s.FinishGesture(4, 4)
	if !built {
		t.Fatal("pen commit should produce a shape")
	}
	if _, ok := shape.(draw.Freehand); !ok {
		t.Fatalf("expected Freehand, got %T", shape)
	}
	if _, ok := s.DrawingState().(Idle); !ok {
		t.Fatalf("commit should return to Idle, got %T", s.DrawingState())
	}
}

func TestGestureCapturesToolAtStart(t *testing.T) {
	s := New(WithDefaultTool(ToolPen))
	s.StartGesture(0, 0)
	// The gesture keeps the tool it began under even if the default would
	// now resolve differently; changing the override resets instead.
	d := s.DrawingState().(*Drawing)
	if d.Tool != ToolPen {
		t.Fatalf("tool = %v, want pen", d.Tool)
	}
}

func TestExtendGestureNoOpWhenIdle(t *testing.T) {
	s := New()
	s.ExtendGesture(5, 5) // must not panic or transition
	if _, ok := s.DrawingState().(Idle); !ok {
		t.Fatalf("state changed by no-op extend: %T", s.DrawingState())
	}
}

func TestExtendGestureIgnoredForTwoPointTools(t *testing.T) {
	s := New(WithDefaultTool(ToolLine))
	s.StartGesture(0, 0)
	s.ExtendGesture(5, 5)
	d := s.DrawingState().(*Drawing)
	if len(d.Points) != 0 {
		t.Errorf("line gestures must not accumulate points, got %d", len(d.Points))
	}
}

func TestFinishGestureWithoutGesture(t *testing.T) {
	s := New()
	if _, built := s.FinishGesture(1, 1); built {
		t.Fatal("no shape without an active gesture")
	}
}

func TestFinishGestureAdvancesRainbowHue(t *testing.T) {
	s := New(WithDefaultTool(ToolLine), WithRainbowEnabled(true), WithRainbowStep(1))
	s.StartGesture(0, 0)
	if _, built := s.FinishGesture(3, 4); !built {
		t.Fatal("line commit should produce a shape")
	}
	if got := s.RainbowHue(); math.Abs(got-5) > 1e-9 {
		t.Errorf("hue = %v, want 5 after a length-5 line", got)
	}
}

func TestFinishGestureHueUntouchedWithoutRainbow(t *testing.T) {
	s := New(WithDefaultTool(ToolLine), WithRainbowStep(1))
	s.StartGesture(0, 0)
	s.FinishGesture(30, 40)
	if got := s.RainbowHue(); got != 0 {
		t.Errorf("hue should stay 0 with rainbow off, got %v", got)
	}
}

func TestRectGestureDistanceIsDiagonal(t *testing.T) {
	s := New(WithDefaultTool(ToolRect), WithRainbowEnabled(true), WithRainbowStep(1))
	s.StartGesture(0, 0)
	s.FinishGesture(30, 40)
	if got := s.RainbowHue(); math.Abs(got-50) > 1e-9 {
		t.Errorf("hue = %v, want the 50px diagonal", got)
	}
}

func TestEllipseGestureDistanceIsDiameter(t *testing.T) {
	s := New(WithDefaultTool(ToolEllipse), WithRainbowEnabled(true), WithRainbowStep(1))
	s.StartGesture(0, 0)
	s.FinishGesture(40, 10)
	if got := s.RainbowHue(); math.Abs(got-40) > 1e-9 {
		t.Errorf("hue = %v, want twice the 20px horizontal radius", got)
	}
}

func TestCancelGesture(t *testing.T) {
	s := New(WithDefaultTool(ToolPen))
	s.StartGesture(0, 0)
	s.CancelGesture()
	if _, ok := s.DrawingState().(Idle); !ok {
		t.Fatalf("cancel should return to Idle, got %T", s.DrawingState())
	}
}

func TestTextInputFlow(t *testing.T) {
	s := New()
	s.BeginTextInput(7, 9)
	s.AppendTextRune('h')
	s.AppendTextRune('i')
	s.AppendTextRune('!')
	s.DeleteTextRune()

	pos, text, ok := s.FinishTextInput()
	if !ok {
		t.Fatal("expected text input to finish")
	}
	if text != "hi" {
		t.Errorf("text = %q, want \"hi\"", text)
	}
	if pos.X != 7 || pos.Y != 9 {
		t.Errorf("pos = %v, want (7,9)", pos)
	}
	if _, ok := s.DrawingState().(Idle); !ok {
		t.Fatalf("finish should return to Idle, got %T", s.DrawingState())
	}
}

func TestFinishTextInputWhenIdle(t *testing.T) {
	s := New()
	if _, _, ok := s.FinishTextInput(); ok {
		t.Fatal("no text input to finish")
	}
}

func TestNeedsRedrawLifecycle(t *testing.T) {
	s := New()
	if s.NeedsRedraw() {
		t.Fatal("fresh state should not need a redraw")
	}
	s.SetThickness(9)
	if !s.NeedsRedraw() {
		t.Fatal("mutation should set the redraw flag")
	}
	s.Redrawn()
	if s.NeedsRedraw() {
		t.Fatal("Redrawn should clear the flag")
	}
}

func TestActiveToolDefault(t *testing.T) {
	s := New(WithDefaultTool(ToolMarker))
	if got := s.ActiveTool(); got != ToolMarker {
		t.Errorf("active tool = %v, want marker default", got)
	}
	s.SetToolOverride(ToolEraser)
	if got := s.ActiveTool(); got != ToolEraser {
		t.Errorf("active tool = %v, want eraser override", got)
	}
	s.ClearToolOverride()
	if got := s.ActiveTool(); got != ToolMarker {
		t.Errorf("active tool = %v, want marker again", got)
	}
}
