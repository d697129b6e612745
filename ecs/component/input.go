package component

// Input is the per-tick keyboard snapshot used by the player controller.
// Pressed and Released are edge flags for this tick only.
type Input struct {
	LeftHeld      bool
	RightHeld     bool
	LeftPressed   bool
	RightPressed  bool
	LeftReleased  bool
	RightReleased bool
	JumpPressed   bool
	PausePressed  bool
}

// MoveX returns the signed horizontal axis: -1, 0 or 1.
func (in Input) MoveX() float64 {
	x := 0.0
	if in.LeftHeld {
		x--
	}
	if in.RightHeld {
		x++
	}
	return x
}

func (in Input) HorizontalHeld() bool {
	return in.LeftHeld || in.RightHeld
}

func (in Input) HorizontalPressed() bool {
	return in.LeftPressed || in.RightPressed
}

// HorizontalReleasedToNone reports that a directional key went up this tick
// and no directional key remains held.
func (in Input) HorizontalReleasedToNone() bool {
	return (in.LeftReleased || in.RightReleased) && !in.HorizontalHeld()
}
