package input

// Action identifies an operation the hosting application performs on behalf
// of the toolbar. The core forwards these without implementing them.
type Action int

const (
	ActionUndo Action = iota
	ActionRedo
	ActionClearCanvas
	ActionEnterTextMode
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	case ActionClearCanvas:
		return "clear-canvas"
	case ActionEnterTextMode:
		return "enter-text-mode"
	default:
		return "unknown"
	}
}

// ActionHandler receives forwarded toolbar actions.
type ActionHandler interface {
	HandleAction(Action)
}

// ActionHandlerFunc adapts a function to the ActionHandler interface.
type ActionHandlerFunc func(Action)

// HandleAction implements ActionHandler.
func (f ActionHandlerFunc) HandleAction(a Action) { f(a) }
