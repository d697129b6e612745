package system

import (
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := w.Player()
	if !ok {
		return
	}

	in := w.Input
	grounded := player.Body != nil && player.Body.Grounded()

	ctx := &playerStateContext{Player: player, Delta: w.Delta}
	if next, enter := nextPlayerState(player.Player.State, grounded, in); enter {
		ctx.changeState(next)
	}

	updateFacing(player, in)

	if player.Body != nil {
		if dx := in.MoveX() * player.Player.MovementScalar; dx != 0 {
			player.Body.Translate(dx, 0)
		}
	}
}

// nextPlayerState applies the grounded transition table. Later rows win, so a
// jump pressed on the same tick as a direction starts a jump. enter is true
// whenever a row matched, including re-entry into the current state.
func nextPlayerState(state component.PlayerState, grounded bool, in component.Input) (component.PlayerState, bool) {
	if !grounded {
		return state, false
	}

	next, enter := state, false
	if in.HorizontalPressed() {
		next, enter = component.PlayerWalking, true
	}
	if !enter && state == component.PlayerWalking && !in.HorizontalHeld() {
		next, enter = component.PlayerIdle, true
	}
	if !enter && state == component.PlayerJumpingInAir {
		if in.HorizontalHeld() {
			next = component.PlayerWalking
		} else {
			next = component.PlayerIdle
		}
		enter = true
	}
	if in.JumpPressed {
		next, enter = component.PlayerJumping, true
	}
	return next, enter
}

// updateFacing follows the directional keys regardless of state. A fresh press
// wins over a key that was already held.
func updateFacing(player *ecs.PlayerEntity, in component.Input) {
	switch {
	case in.LeftPressed && !in.RightPressed:
		player.Player.Facing = component.FacingLeft
	case in.RightPressed && !in.LeftPressed:
		player.Player.Facing = component.FacingRight
	case in.LeftHeld && !in.RightHeld:
		player.Player.Facing = component.FacingLeft
	case in.RightHeld && !in.LeftHeld:
		player.Player.Facing = component.FacingRight
	}
	player.Sprite.FacingLeft = player.Player.Facing == component.FacingLeft
}
