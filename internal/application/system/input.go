package system

// Control is an abstract player control. Key bindings live in the scene.
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlJump
	ControlFire
	ControlConfirm
	ControlRestart

	ControlCount
)

// String returns the string representation of the control
func (c Control) String() string {
	switch c {
	case ControlLeft:
		return "Left"
	case ControlRight:
		return "Right"
	case ControlJump:
		return "Jump"
	case ControlFire:
		return "Fire"
	case ControlConfirm:
		return "Confirm"
	case ControlRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputState holds the control state for one tick
type InputState struct {
	Held     [ControlCount]bool
	Pressed  [ControlCount]bool // newly pressed this tick
	Released [ControlCount]bool // newly released this tick
}

// IsHeld returns true while the control is down
func (s InputState) IsHeld(c Control) bool {
	return c >= 0 && c < ControlCount && s.Held[c]
}

// IsPressed returns true on the tick the control went down
func (s InputState) IsPressed(c Control) bool {
	return c >= 0 && c < ControlCount && s.Pressed[c]
}

// IsReleased returns true on the tick the control went up
func (s InputState) IsReleased(c Control) bool {
	return c >= 0 && c < ControlCount && s.Released[c]
}
