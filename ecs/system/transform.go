package system

import (
	"github.com/milk9111/shapeshift/ecs"
	"github.com/milk9111/shapeshift/ecs/component"
)

// TransformationSystem applies queued transform signals to the player in
// arrival order.
type TransformationSystem struct{}

func NewTransformationSystem() *TransformationSystem { return &TransformationSystem{} }

func (s *TransformationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	signals := w.Signals.Drain()
	if len(signals) == 0 {
		return
	}
	player := w.MustPlayer()
	for _, sig := range signals {
		if ApplyTransformation(w, player, sig.Catalyst) {
			w.Applied.Push(sig)
		}
	}
}

// ApplyTransformation swaps the player into catalyst's form. Nothing changes
// unless both the recipe and its sprite sheet are registered.
func ApplyTransformation(w *ecs.World, player *ecs.PlayerEntity, catalyst component.Potion) bool {
	recipe, ok := w.Catalysts.Lookup(catalyst)
	if !ok {
		return false
	}
	sheet, ok := w.Sheets.Lookup(catalyst)
	if !ok || sheet == nil {
		return false
	}

	player.Sprite.Sheet = sheet
	player.Sprite.Tint = recipe.Tint

	player.Collider = recipe.Collider
	player.GravityScale = recipe.GravityScale
	if player.Body != nil {
		player.Body.ReplaceCollider(recipe.Collider)
		player.Body.SetGravityScale(recipe.GravityScale)
	}

	player.Animation.Timer.SetDuration(recipe.TimerInterval)
	player.Player.MovementScalar = recipe.MovementScalar
	player.Player.JumpStrength = recipe.JumpStrength

	form := catalyst
	player.Player.Form = &form
	return true
}
