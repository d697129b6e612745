package component

import (
	"image/color"
	"time"
)

// Catalyst is the transformation a potion applies to the player.
type Catalyst struct {
	Sheet          string
	Collider       Collider
	GravityScale   float64
	TimerInterval  time.Duration
	MovementScalar float64
	JumpStrength   float64
	Tint           color.Color
}

// CatalystTable maps each potion to its recipe.
type CatalystTable map[Potion]Catalyst

// Lookup returns the recipe for p.
func (t CatalystTable) Lookup(p Potion) (Catalyst, bool) {
	if t == nil {
		return Catalyst{}, false
	}
	c, ok := t[p]
	return c, ok
}
