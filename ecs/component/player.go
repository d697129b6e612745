package component

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Player holds the controller-owned tuning and discrete state. Both scalars
// are rewritten by transformations.
type Player struct {
	MovementScalar float64
	JumpStrength   float64
	State          PlayerState
	Facing         Facing
	// Form is the catalyst last applied, or nil for the starting form.
	Form *Potion
}
