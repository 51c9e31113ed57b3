package input

import "image"

// DrawingState is the closed set of gesture states. Consumers type-switch
// over the three variants; transitions are centralized on State so stale
// geometry can never outlive the tool it was gathered under.
type DrawingState interface {
	drawingState()
}

// Idle is the initial and terminal state: no gesture in flight.
type Idle struct{}

// Drawing holds the geometry of an in-flight gesture. Tool is captured when
// the gesture starts and is not re-read from the selection afterwards.
// Points is append-only and only populated for freehand tools.
type Drawing struct {
	Tool   Tool
	Start  image.Point
	Points []image.Point
}

// TextInput is a gesture that transitioned into text entry. The core treats
// it as opaque beyond "not idle, not drawing geometry".
type TextInput struct {
	Pos  image.Point
	Text string
}

func (Idle) drawingState()       {}
func (*Drawing) drawingState()   {}
func (*TextInput) drawingState() {}
