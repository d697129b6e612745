package system

import "github.com/milk9111/shapeshift/ecs"

// AnimationSystem advances the behavior owned by the player's current state.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := w.Player()
	if !ok {
		return
	}
	ctx := &playerStateContext{Player: player, Delta: w.Delta}
	behaviorFor(player.Player.State).Animate(ctx)
}
