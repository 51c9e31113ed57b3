// Package input holds the interactive state core of the annotation overlay:
// the active tool, the in-flight gesture, per-tool style parameters, toolbar
// visibility, and the rainbow colorizer. The whole package is a single
// mutable aggregate driven synchronously by the hosting event loop; nothing
// here is safe for concurrent use.
package input

import (
	"image"
	"math"

	"github.com/example/inkover/internal/draw"
)

// Stroke thickness bounds shared by the pen thickness and the eraser size.
const (
	MinStrokeThickness = 1.0
	MaxStrokeThickness = 50.0
)

const (
	minMarkerOpacity = 0.05
	maxMarkerOpacity = 0.9
	minFontSize      = 8.0
	maxFontSize      = 72.0
)

// valueEpsilon is the tolerance used to treat a re-sent value as unchanged so
// UI controls echoing their current value do not trigger invalidation storms.
const valueEpsilon = 1e-9

const highlightAlpha = 0.35

// FontDescriptor names the typeface used for text annotations.
type FontDescriptor struct {
	Family string
	Bold   bool
	Italic bool
}

// State is the input/state aggregate. The hosting application owns exactly
// one for its whole lifetime and serializes all calls on it.
type State struct {
	state DrawingState

	defaultTool     Tool
	toolOverride    Tool
	hasToolOverride bool

	currentColor     draw.Color
	highlightColor   draw.Color
	currentThickness float64
	eraserSize       float64
	markerOpacity    float64
	fontDescriptor   FontDescriptor
	currentFontSize  float64
	fillEnabled      bool

	rainbowEnabled bool
	rainbowHue     float64
	rainbowHueStep float64

	arrowLength float64
	arrowAngle  float64

	toolbarVisible     bool
	toolbarTopVisible  bool
	toolbarSideVisible bool
	toolbarTopPinned   bool
	toolbarSidePinned  bool
	toolbarUseIcons    bool

	showMoreColors           bool
	showActionsSection       bool
	showDelaySliders         bool
	showMarkerOpacitySection bool

	needsRedraw bool
	dirty       DirtyTracker
	actions     ActionHandler
}

// Option modifies a State during creation.
type Option func(*State)

// WithDefaultTool sets the tool used when no explicit override is active.
func WithDefaultTool(t Tool) Option { return func(s *State) { s.defaultTool = t } }

// WithDirtyTracker attaches the invalidation collaborator.
func WithDirtyTracker(d DirtyTracker) Option { return func(s *State) { s.dirty = d } }

// WithActionHandler attaches the collaborator receiving toolbar actions.
func WithActionHandler(h ActionHandler) Option { return func(s *State) { s.actions = h } }

// WithColor sets the initial drawing color.
func WithColor(c draw.Color) Option {
	return func(s *State) {
		s.currentColor = c
		s.syncHighlightColor()
	}
}

// WithThickness sets the initial stroke thickness, clamped to valid bounds.
func WithThickness(v float64) Option {
	return func(s *State) { s.currentThickness = clamp(v, MinStrokeThickness, MaxStrokeThickness) }
}

// WithEraserSize sets the initial eraser size, clamped to valid bounds.
func WithEraserSize(v float64) Option {
	return func(s *State) { s.eraserSize = clamp(v, MinStrokeThickness, MaxStrokeThickness) }
}

// WithMarkerOpacity sets the initial marker opacity multiplier.
func WithMarkerOpacity(v float64) Option {
	return func(s *State) { s.markerOpacity = clamp(v, minMarkerOpacity, maxMarkerOpacity) }
}

// WithFont sets the initial font descriptor and size.
func WithFont(d FontDescriptor, size float64) Option {
	return func(s *State) {
		s.fontDescriptor = d
		s.currentFontSize = clamp(size, minFontSize, maxFontSize)
	}
}

// WithFillEnabled sets the initial fill flag for fill-capable shapes.
func WithFillEnabled(enabled bool) Option { return func(s *State) { s.fillEnabled = enabled } }

// WithRainbowStep sets how many hue degrees a pixel of path distance advances.
func WithRainbowStep(degPerPixel float64) Option {
	return func(s *State) { s.rainbowHueStep = degPerPixel }
}

// WithRainbowEnabled sets the initial rainbow mode flag.
func WithRainbowEnabled(enabled bool) Option { return func(s *State) { s.rainbowEnabled = enabled } }

// New creates the aggregate with overlay defaults applied, then options.
func New(opts ...Option) *State {
	s := &State{
		state:            Idle{},
		defaultTool:      ToolPen,
		currentColor:     draw.Color{R: 1, A: 1},
		currentThickness: 3,
		eraserSize:       12,
		markerOpacity:    0.5,
		fontDescriptor:   FontDescriptor{Family: "sans-serif"},
		currentFontSize:  16,
		rainbowHueStep:   0.5,
		arrowLength:      20,
		arrowAngle:       math.Pi / 6,
	}
	s.syncHighlightColor()
	for _, o := range opts {
		o(s)
	}
	return s
}

// DrawingState returns the current gesture state.
func (s *State) DrawingState() DrawingState { return s.state }

// ActiveTool resolves the explicit override, falling back to the configured
// default when none is set.
func (s *State) ActiveTool() Tool {
	if s.hasToolOverride {
		return s.toolOverride
	}
	return s.defaultTool
}

// NeedsRedraw reports whether any mutation since the last Redrawn call
// requires a repaint.
func (s *State) NeedsRedraw() bool { return s.needsRedraw }

// Redrawn clears the needs-redraw flag once the host has repainted.
func (s *State) Redrawn() { s.needsRedraw = false }

// StartGesture begins a Drawing gesture at the pointer position, capturing
// the currently active tool. An in-flight gesture is replaced.
func (s *State) StartGesture(x, y int) {
	pt := image.Pt(x, y)
	d := &Drawing{Tool: s.ActiveTool(), Start: pt}
	if d.Tool.freehand() {
		d.Points = append(d.Points, pt)
	}
	s.state = d
}

// ExtendGesture appends the pointer position to the accumulated trail of a
// freehand gesture. For two-point tools, and when no gesture is active, it
// is a no-op.
func (s *State) ExtendGesture(x, y int) {
	d, ok := s.state.(*Drawing)
	if !ok || !d.Tool.freehand() {
		return
	}
	d.Points = append(d.Points, image.Pt(x, y))
}

// FinishGesture commits the gesture at the pointer position: it returns the
// final shape (when the tool produces one), advances the rainbow hue by the
// gesture's characteristic distance so the next stroke continues the
// progression, and resets to Idle. The accumulated points are released with
// the gesture.
func (s *State) FinishGesture(x, y int) (draw.Shape, bool) {
	d, ok := s.state.(*Drawing)
	if !ok {
		return nil, false
	}
	s.ExtendGesture(x, y)
	shape, built := s.buildShape(d, x, y)
	if s.rainbowEnabled {
		s.AdvanceRainbowHue(s.gestureDistance(d, x, y))
	}
	s.state = Idle{}
	return shape, built
}

// CancelGesture abandons any in-flight gesture or text input.
func (s *State) CancelGesture() {
	s.state = Idle{}
}

// BeginTextInput transitions into text entry at the given position. Any
// drawing geometry in flight is discarded.
func (s *State) BeginTextInput(x, y int) {
	s.state = &TextInput{Pos: image.Pt(x, y)}
}

// AppendTextRune grows the in-progress text. No-op outside TextInput.
func (s *State) AppendTextRune(r rune) {
	if ti, ok := s.state.(*TextInput); ok {
		ti.Text += string(r)
	}
}

// DeleteTextRune removes the final byte-run of the in-progress text.
func (s *State) DeleteTextRune() {
	ti, ok := s.state.(*TextInput)
	if !ok || ti.Text == "" {
		return
	}
	runes := []rune(ti.Text)
	ti.Text = string(runes[:len(runes)-1])
}

// FinishTextInput returns the entered text and position and resets to Idle.
func (s *State) FinishTextInput() (image.Point, string, bool) {
	ti, ok := s.state.(*TextInput)
	if !ok {
		return image.Point{}, "", false
	}
	s.state = Idle{}
	return ti.Pos, ti.Text, true
}

// gestureDistance is the shape-specific characteristic distance used for the
// rainbow hue advance: path length for freehand trails, straight length for
// line/arrow, diagonal for rect, horizontal diameter for ellipse.
func (s *State) gestureDistance(d *Drawing, x, y int) float64 {
	switch d.Tool {
	case ToolPen, ToolMarker, ToolHighlight, ToolEraser:
		return draw.PathLength(d.Points)
	case ToolLine, ToolArrow:
		return draw.Distance(d.Start, image.Pt(x, y))
	case ToolRect:
		r := draw.NormalizeRect(d.Start, image.Pt(x, y))
		return math.Hypot(float64(r.Dx()), float64(r.Dy()))
	case ToolEllipse:
		_, rx, _ := draw.EllipseBounds(d.Start, image.Pt(x, y))
		return float64(rx * 2)
	default:
		return 0
	}
}

func (s *State) markFullyDirty() {
	if s.dirty != nil {
		s.dirty.MarkFull()
	}
	s.needsRedraw = true
}

func (s *State) handleAction(a Action) {
	if s.actions != nil {
		s.actions.HandleAction(a)
	}
}

func (s *State) syncHighlightColor() {
	s.highlightColor = s.currentColor.WithAlpha(highlightAlpha)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < valueEpsilon
}
