package input

import "fmt"

// Tool identifies a drawing tool. The set is closed; selection logic lives on
// State, not on the variants themselves.
type Tool int

const (
	ToolPen Tool = iota
	ToolLine
	ToolRect
	ToolEllipse
	ToolArrow
	ToolMarker
	ToolHighlight
	ToolEraser
	ToolSelect
)

// String returns the lowercase tool name.
func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolLine:
		return "line"
	case ToolRect:
		return "rect"
	case ToolEllipse:
		return "ellipse"
	case ToolArrow:
		return "arrow"
	case ToolMarker:
		return "marker"
	case ToolHighlight:
		return "highlight"
	case ToolEraser:
		return "eraser"
	case ToolSelect:
		return "select"
	default:
		return "unknown"
	}
}

// ParseTool resolves a tool from its configuration name.
func ParseTool(name string) (Tool, error) {
	for t := ToolPen; t <= ToolSelect; t++ {
		if t.String() == name {
			return t, nil
		}
	}
	return ToolPen, fmt.Errorf("unknown tool %q", name)
}

// freehand reports whether the tool accumulates a point trail during a
// gesture rather than deriving geometry from the start and current points.
func (t Tool) freehand() bool {
	switch t {
	case ToolPen, ToolMarker, ToolHighlight, ToolEraser:
		return true
	default:
		return false
	}
}
