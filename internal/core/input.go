package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // shift one column left
	ActionRight            // shift one column right
	ActionDASLeft          // slide to the left wall
	ActionDASRight         // slide to the right wall
	ActionSoftDrop         // one gravity step
	ActionSonicDrop        // slide to rest without locking
	ActionHardDrop         // slide to rest and lock
	ActionRotateCW         // quarter turn clockwise
	ActionRotateCCW        // quarter turn counter-clockwise
	ActionRotate180        // half turn
	ActionRestart          // start over after top-out
	ActionPause            // pause/unpause
	ActionQuit             // exit
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionDASLeft:   "DASLeft",
	ActionDASRight:  "DASRight",
	ActionSoftDrop:  "SoftDrop",
	ActionSonicDrop: "SonicDrop",
	ActionHardDrop:  "HardDrop",
	ActionRotateCW:  "RotateCW",
	ActionRotateCCW: "RotateCCW",
	ActionRotate180: "Rotate180",
	ActionRestart:   "Restart",
	ActionPause:     "Pause",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input collected during one simulation tick.
// Actions keep press order so that "rotate then drop" is not reordered.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
