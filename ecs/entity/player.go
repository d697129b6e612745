package entity

import (
	"fmt"

	"github.com/milk9111/shapeshift/assets"
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
	"github.com/milk9111/shapeshift/prefabs"
)

// NewPlayerAt spawns the player centered on x, y in the Idle state with the
// default sheet. The body is created through the world's physics, if any.
func NewPlayerAt(w *ecs.World, spec *prefabs.PlayerSpec, sheet *assets.Handle, x, y float64) (*ecs.PlayerEntity, error) {
	if w == nil || spec == nil {
		return nil, fmt.Errorf("player: nil world or spec")
	}

	anim := AnimationFromSpec(spec.Animation)
	collider := component.Collider{Width: spec.Collider.Width, Height: spec.Collider.Height}

	e := w.CreateEntity()
	p := &ecs.PlayerEntity{
		Entity: e,
		Player: component.Player{
			MovementScalar: spec.MovementScalar,
			JumpStrength:   spec.JumpStrength,
			State:          component.PlayerIdle,
			Facing:         component.FacingRight,
		},
		Animation: anim,
		Sprite: component.Sprite{
			Sheet: sheet,
			Grid:  SheetGridFromSpec(spec.Sheet),
			Frame: anim.Idle.First,
		},
		Transform:    component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1},
		Collider:     collider,
		GravityScale: spec.GravityScale,
	}

	if pw := w.PhysicsWorld(); pw != nil {
		p.Body = pw.AddPlayer(e, x, y, collider)
		if p.Body != nil {
			p.Body.SetGravityScale(spec.GravityScale)
		}
	}

	if err := w.AddPlayer(p); err != nil {
		if pw := w.PhysicsWorld(); pw != nil {
			pw.Remove(e)
		}
		w.DestroyEntity(e)
		return nil, fmt.Errorf("player: %w", err)
	}
	return p, nil
}

// AnimationFromSpec builds the player's animation state with a fresh
// repeating frame timer.
func AnimationFromSpec(spec prefabs.AnimationSpec) component.PlayerAnimation {
	return component.PlayerAnimation{
		Idle:   component.FrameRange{First: spec.Idle.First, Last: spec.Idle.Last},
		Walk:   component.FrameRange{First: spec.Walk.First, Last: spec.Walk.Last},
		Jump:   component.FrameRange{First: spec.Jump.First, Last: spec.Jump.Last},
		Timer:  component.NewTimer(spec.Interval(), component.TimerRepeating),
		Blinks: component.NewBlinkSequence(spec.BlinkSequence()...),
	}
}

func SheetGridFromSpec(spec prefabs.SheetSpec) assets.SheetGrid {
	return assets.SheetGrid{
		CellW:   spec.CellW,
		CellH:   spec.CellH,
		Columns: spec.Columns,
		Rows:    spec.Rows,
	}
}
