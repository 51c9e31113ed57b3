package input

import "github.com/example/inkover/internal/draw"

// SetToolOverride sets an explicit tool override. Returns true if the
// override changed. A real change collapses any in-flight drawing geometry
// back to Idle, since points gathered under one tool's semantics are not
// valid under another's; text input survives.
func (s *State) SetToolOverride(tool Tool) bool {
	if s.hasToolOverride && s.toolOverride == tool {
		return false
	}
	s.toolOverride = tool
	s.hasToolOverride = true
	s.resetIncompatibleState()
	s.markFullyDirty()
	return true
}

// ClearToolOverride removes the explicit override so the default tool
// applies again. Returns true if an override was present.
func (s *State) ClearToolOverride() bool {
	if !s.hasToolOverride {
		return false
	}
	s.hasToolOverride = false
	s.toolOverride = 0
	s.resetIncompatibleState()
	s.markFullyDirty()
	return true
}

// ToolOverride returns the current explicit override, if any.
func (s *State) ToolOverride() (Tool, bool) {
	return s.toolOverride, s.hasToolOverride
}

func (s *State) resetIncompatibleState() {
	switch s.state.(type) {
	case Idle, *TextInput:
	default:
		s.state = Idle{}
	}
}

// SetColor updates the drawing color. The highlighter tint is re-derived so
// it stays in sync with the base color. Returns true if changed.
func (s *State) SetColor(c draw.Color) bool {
	if s.currentColor == c {
		return false
	}
	s.currentColor = c
	s.syncHighlightColor()
	s.markFullyDirty()
	return true
}

// Color returns the current drawing color.
func (s *State) Color() draw.Color { return s.currentColor }

// HighlightColor returns the translucent tint derived from the current color.
func (s *State) HighlightColor() draw.Color { return s.highlightColor }

// SetThickness sets the absolute stroke thickness (px), clamped to valid
// bounds. Returns true if changed.
func (s *State) SetThickness(v float64) bool {
	clamped := clamp(v, MinStrokeThickness, MaxStrokeThickness)
	if nearlyEqual(clamped, s.currentThickness) {
		return false
	}
	s.currentThickness = clamped
	s.markFullyDirty()
	return true
}

// Thickness returns the current stroke thickness.
func (s *State) Thickness() float64 { return s.currentThickness }

// SetEraserSize sets the absolute eraser size (px), clamped to the same
// bounds as thickness. Returns true if changed.
func (s *State) SetEraserSize(v float64) bool {
	clamped := clamp(v, MinStrokeThickness, MaxStrokeThickness)
	if nearlyEqual(clamped, s.eraserSize) {
		return false
	}
	s.eraserSize = clamped
	s.markFullyDirty()
	return true
}

// EraserSize returns the current eraser size.
func (s *State) EraserSize() float64 { return s.eraserSize }

// SetThicknessForActiveTool routes the value to the eraser-size slot when the
// eraser is active and to the thickness slot otherwise. The "primary size" is
// split across two storage slots by tool; there is no single source of truth.
func (s *State) SetThicknessForActiveTool(v float64) bool {
	if s.ActiveTool() == ToolEraser {
		return s.SetEraserSize(v)
	}
	return s.SetThickness(v)
}

// NudgeThicknessForActiveTool adjusts the active tool's size slot by delta.
func (s *State) NudgeThicknessForActiveTool(delta float64) bool {
	if s.ActiveTool() == ToolEraser {
		return s.SetEraserSize(s.eraserSize + delta)
	}
	return s.SetThickness(s.currentThickness + delta)
}

// SetMarkerOpacity sets the marker opacity multiplier, clamped to
// [0.05, 0.9]. Returns true if changed.
func (s *State) SetMarkerOpacity(v float64) bool {
	clamped := clamp(v, minMarkerOpacity, maxMarkerOpacity)
	if nearlyEqual(clamped, s.markerOpacity) {
		return false
	}
	s.markerOpacity = clamped
	s.markFullyDirty()
	return true
}

// MarkerOpacity returns the marker opacity multiplier.
func (s *State) MarkerOpacity() float64 { return s.markerOpacity }

// SetFontDescriptor sets the typeface used for text annotations.
func (s *State) SetFontDescriptor(d FontDescriptor) bool {
	if s.fontDescriptor == d {
		return false
	}
	s.fontDescriptor = d
	s.markFullyDirty()
	return true
}

// FontDescriptor returns the current typeface.
func (s *State) FontDescriptor() FontDescriptor { return s.fontDescriptor }

// SetFontSize sets the font size (px), clamped to [8, 72].
func (s *State) SetFontSize(v float64) bool {
	clamped := clamp(v, minFontSize, maxFontSize)
	if nearlyEqual(clamped, s.currentFontSize) {
		return false
	}
	s.currentFontSize = clamped
	s.markFullyDirty()
	return true
}

// FontSize returns the current font size.
func (s *State) FontSize() float64 { return s.currentFontSize }

// SetFillEnabled toggles fill for fill-capable shapes (rect, ellipse).
func (s *State) SetFillEnabled(enabled bool) bool {
	if s.fillEnabled == enabled {
		return false
	}
	s.fillEnabled = enabled
	s.needsRedraw = true
	return true
}

// FillEnabled reports whether fill-capable shapes are drawn filled.
func (s *State) FillEnabled() bool { return s.fillEnabled }

// SetToolbarVisible sets all three toolbar visibility flags in lockstep.
// Returns true if any of them toggled.
func (s *State) SetToolbarVisible(visible bool) bool {
	anyChange := s.toolbarVisible != visible ||
		s.toolbarTopVisible != visible ||
		s.toolbarSideVisible != visible
	if !anyChange {
		return false
	}
	s.toolbarVisible = visible
	s.toolbarTopVisible = visible
	s.toolbarSideVisible = visible
	s.needsRedraw = true
	return true
}

// ToolbarVisible reports whether any toolbar is marked visible.
func (s *State) ToolbarVisible() bool {
	return s.toolbarVisible || s.toolbarTopVisible || s.toolbarSideVisible
}

// ToolbarTopVisible reports whether the top toolbar is visible.
func (s *State) ToolbarTopVisible() bool { return s.toolbarTopVisible }

// ToolbarSideVisible reports whether the side toolbar is visible.
func (s *State) ToolbarSideVisible() bool { return s.toolbarSideVisible }

// ToolbarTopPinned reports whether the top toolbar is pinned open.
func (s *State) ToolbarTopPinned() bool { return s.toolbarTopPinned }

// ToolbarSidePinned reports whether the side toolbar is pinned open.
func (s *State) ToolbarSidePinned() bool { return s.toolbarSidePinned }

// ToolbarUseIcons reports whether toolbar buttons render icons over labels.
func (s *State) ToolbarUseIcons() bool { return s.toolbarUseIcons }

// ShowMoreColors reports whether the extended color section is shown.
func (s *State) ShowMoreColors() bool { return s.showMoreColors }

// ShowActionsSection reports whether the actions section is shown.
func (s *State) ShowActionsSection() bool { return s.showActionsSection }

// ShowDelaySliders reports whether the delay slider section is shown.
func (s *State) ShowDelaySliders() bool { return s.showDelaySliders }

// ShowMarkerOpacitySection reports whether the marker opacity section is shown.
func (s *State) ShowMarkerOpacitySection() bool { return s.showMarkerOpacitySection }

// InitToolbarFromConfig applies the toolbar flags once at startup. Pinned
// bars start visible; the section toggles are immutable afterwards.
func (s *State) InitToolbarFromConfig(topPinned, sidePinned, useIcons, showMoreColors, showActionsSection, showDelaySliders, showMarkerOpacitySection bool) {
	s.toolbarTopPinned = topPinned
	s.toolbarSidePinned = sidePinned
	s.toolbarTopVisible = topPinned
	s.toolbarSideVisible = sidePinned
	s.toolbarVisible = topPinned || sidePinned
	s.toolbarUseIcons = useIcons
	s.showMoreColors = showMoreColors
	s.showActionsSection = showActionsSection
	s.showDelaySliders = showDelaySliders
	s.showMarkerOpacitySection = showMarkerOpacitySection
}

// ToolbarUndo forwards the toolbar undo button to the action collaborator.
func (s *State) ToolbarUndo() { s.handleAction(ActionUndo) }

// ToolbarRedo forwards the toolbar redo button to the action collaborator.
func (s *State) ToolbarRedo() { s.handleAction(ActionRedo) }

// ToolbarClear forwards the clear-canvas button to the action collaborator.
func (s *State) ToolbarClear() { s.handleAction(ActionClearCanvas) }

// ToolbarEnterTextMode forwards the text-mode button to the action collaborator.
func (s *State) ToolbarEnterTextMode() { s.handleAction(ActionEnterTextMode) }
