package core

// Action represents a semantic demo action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // Space, P - pause or resume every tween
	ActionRestart        // R - restart the demo
	ActionReverse        // V - reverse running tweens
	ActionNext           // Right, L - next ease or preset
	ActionPrev           // Left, H - previous ease or preset
	ActionFaster         // + - raise time scale
	ActionSlower         // - - lower time scale
	ActionComplete       // C - stop everything, jumping to the end
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

var actionNames = [...]string{
	ActionNone:     "None",
	ActionPause:    "Pause",
	ActionRestart:  "Restart",
	ActionReverse:  "Reverse",
	ActionNext:     "Next",
	ActionPrev:     "Prev",
	ActionFaster:   "Faster",
	ActionSlower:   "Slower",
	ActionComplete: "Complete",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionQuit:     "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one host tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
