package component

// Collider is an axis-aligned box size in world units.
type Collider struct {
	Width  float64
	Height float64
}

// Body is the player's handle into the physics collaborator. Positions and
// velocities use screen coordinates: +Y points down.
type Body interface {
	// Grounded reports ground contact as of the most recent physics step.
	Grounded() bool
	// Translate requests a kinematic displacement for the next step.
	Translate(dx, dy float64)
	SetVelocity(x, y float64)
	Velocity() (x, y float64)
	Position() (x, y float64)
	// ReplaceCollider swaps the body's shape for a box of the given size.
	ReplaceCollider(c Collider)
	SetGravityScale(scale float64)
}
